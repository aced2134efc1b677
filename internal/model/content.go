package model

// Content entities served on the public marketing site and managed through
// the admin CRUD surface.  Field names mirror what the frontend consumes.

// Service is one service offering shown on the services page.
type Service struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Capabilities []string `json:"capabilities"`
	Tools        []string `json:"tools"`
}

// CaseStudy is a customer success story.
type CaseStudy struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Industry     string   `json:"industry"`
	Challenge    string   `json:"challenge"`
	Solution     string   `json:"solution"`
	Results      string   `json:"results"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
}

// BlogPost is an insights article.  Slug is the public URL key; the admin
// UI addresses posts by id.
type BlogPost struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Image    string `json:"image"`
	Date     string `json:"date"`
	Author   string `json:"author"`
	Category string `json:"category"`
}

// TeamMember is a leadership bio.
type TeamMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
}

// Testimonial is a client quote with a 1-5 rating.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar"`
}

// Partner is a technology or delivery partner logo entry.  Inactive
// partners stay in the store but are hidden from the public list.
type Partner struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	LogoURL     string `json:"logo_url"`
	Website     string `json:"website"`
	Description string `json:"description"`
	IsActive    bool   `json:"active"`
}
