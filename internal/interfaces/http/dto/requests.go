package dto

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HeroRequest represents the hero section form fields.
// The profile image travels as a multipart file part.
type HeroRequest struct {
	Name     string `form:"name"`
	Role     string `form:"role"`
	Headline string `form:"headline"`
}

// AboutRequest represents the about section payload
type AboutRequest struct {
	Points []string `json:"points"`
}

// SkillRequest represents the skill form fields.
// The icon travels as a multipart file part.
type SkillRequest struct {
	Name     string `form:"name"`
	Category string `form:"category"`
	Color    string `form:"color"`
}

// ExperienceRequest represents an experience entry payload
type ExperienceRequest struct {
	Role      string   `json:"role"`
	Company   string   `json:"company"`
	Location  string   `json:"location"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
	Points    []string `json:"points"`
}

// ProjectRequest represents the project form fields. Points and the
// tech stack arrive as JSON-encoded strings alongside the optional
// thumbnail file part.
type ProjectRequest struct {
	Title      string `form:"title"`
	Summary    string `form:"summary"`
	Points     string `form:"points"`
	TechStack  string `form:"techStack"`
	LiveLink   string `form:"liveLink"`
	GithubLink string `form:"githubLink"`
}

// EducationRequest represents an education entry payload
type EducationRequest struct {
	Degree    string `json:"degree"`
	Institute string `json:"institute"`
	Location  string `json:"location"`
	StartYear string `json:"startYear"`
	EndYear   string `json:"endYear"`
}

// CertificationRequest represents a certification payload
type CertificationRequest struct {
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// FooterRequest represents the footer section form fields.
// The resume travels as a multipart file part.
type FooterRequest struct {
	Github   string `form:"github"`
	Linkedin string `form:"linkedin"`
	Email    string `form:"email"`
}

// LoginResponse represents a successful login result
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

// VerifyTokenResponse represents a token verification result
type VerifyTokenResponse struct {
	Valid     bool   `json:"valid"`
	AdminID   string `json:"admin_id"`
	Email     string `json:"email"`
	ExpiresAt string `json:"expires_at"`
}
