package database

import (
	"time"

	"gorm.io/datatypes"
)

// BilingualText holds the two parallel language variants of a public-facing
// string. Both sides may be empty; nothing links their meaning.
type BilingualText struct {
	En string `gorm:"size:2048" json:"en"`
	Fr string `gorm:"size:2048" json:"fr"`
}

// TestimonialStatus enumerates the moderation states of a visitor testimonial.
type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "PENDING"
	TestimonialApproved TestimonialStatus = "APPROVED"
	TestimonialRejected TestimonialStatus = "REJECTED"
)

// Skill is a single skill entry shown on the public page.
type Skill struct {
	ID        uint          `gorm:"primarykey" json:"id"`
	Name      BilingualText `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Category  BilingualText `gorm:"embedded;embeddedPrefix:category_" json:"category"`
	Order     int           `gorm:"column:display_order;default:0;index" json:"order"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// Project describes a portfolio project with optional external links.
type Project struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       BilingualText  `gorm:"embedded;embeddedPrefix:title_" json:"title"`
	Description BilingualText  `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	URL         string         `gorm:"size:512" json:"url"`
	RepoURL     string         `gorm:"size:512" json:"repoUrl"`
	ImageURL    string         `gorm:"size:512" json:"imageUrl"`
	TechStack   datatypes.JSON `json:"techStack"`
	Featured    bool           `json:"featured"`
	Order       int            `gorm:"column:display_order;default:0;index" json:"order"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// Experience is one entry of the work history timeline.
type Experience struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	Company     BilingualText `gorm:"embedded;embeddedPrefix:company_" json:"company"`
	Role        BilingualText `gorm:"embedded;embeddedPrefix:role_" json:"role"`
	Description BilingualText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Location    BilingualText `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	IsCurrent   bool          `json:"isCurrent"`
	Order       int           `gorm:"column:display_order;default:0;index" json:"order"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Education is one entry of the education timeline.
type Education struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	School      BilingualText `gorm:"embedded;embeddedPrefix:school_" json:"school"`
	Degree      BilingualText `gorm:"embedded;embeddedPrefix:degree_" json:"degree"`
	Field       BilingualText `gorm:"embedded;embeddedPrefix:field_" json:"field"`
	Description BilingualText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	StartDate   time.Time     `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	Order       int           `gorm:"column:display_order;default:0;index" json:"order"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Resume references the downloadable resume files, one per language.
// At most one record carries IsActive at any time; the flag is flipped only
// through the create/update transaction in the resume handler.
type Resume struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FileURLEn string    `gorm:"size:512" json:"fileUrlEn"`
	FileURLFr string    `gorm:"size:512" json:"fileUrlFr"`
	IsActive  bool      `gorm:"index" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactInfo holds the publicly displayed contact details. The public read
// path picks the most recently updated record.
type ContactInfo struct {
	ID        uint              `gorm:"primarykey" json:"id"`
	Email     string            `gorm:"size:320" json:"email"`
	Phone     string            `gorm:"size:64" json:"phone"`
	Location  BilingualText     `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Website   string            `gorm:"size:512" json:"website"`
	Socials   datatypes.JSONMap `json:"socials"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// Hobby is a hobby entry shown on the public page.
type Hobby struct {
	ID          uint          `gorm:"primarykey" json:"id"`
	Name        BilingualText `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Description BilingualText `gorm:"embedded;embeddedPrefix:description_" json:"description"`
	Order       int           `gorm:"column:display_order;default:0;index" json:"order"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Message is a contact-form submission from an anonymous visitor.
type Message struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:320" json:"email"`
	Subject   string    `gorm:"size:512" json:"subject"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Testimonial is a visitor-submitted quote. It enters as PENDING and only
// becomes publicly visible once an admin approves it.
type Testimonial struct {
	ID        uint              `gorm:"primarykey" json:"id"`
	Name      string            `gorm:"size:255" json:"name"`
	Role      string            `gorm:"size:255" json:"role"`
	Company   string            `gorm:"size:255" json:"company"`
	Content   string            `gorm:"type:text" json:"content"`
	Status    TestimonialStatus `gorm:"size:32;default:PENDING;index" json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
