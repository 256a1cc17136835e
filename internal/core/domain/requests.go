package domain

// User is the public representation of a principal returned by the
// auth endpoints. It never carries the password hash.
type User struct {
	ID    string `json:"id"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	User User `json:"user"`
}

// LoginRequest is the login form body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the registration form body. Role selects the
// account type; ADMIN accounts cannot be self-registered.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=EMPLOYER CANDIDATE"`
}

// JobInput is the employer's job posting form.
type JobInput struct {
	TitleAr       string `json:"title_ar" binding:"required"`
	TitleEn       string `json:"title_en" binding:"required"`
	DescriptionAr string `json:"description_ar"`
	DescriptionEn string `json:"description_en"`
	Category      string `json:"category" binding:"required"`
	JobType       string `json:"job_type" binding:"required"`
	City          string `json:"city" binding:"required"`
	SalaryMin     *int   `json:"salary_min"`
	SalaryMax     *int   `json:"salary_max"`
	Publish       bool   `json:"publish"`
}

// ApplyRequest is the candidate's application form.
type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

// StatusUpdateRequest advances an application's workflow status.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required,oneof=REVIEWED SHORTLISTED REJECTED HIRED"`
}

// EmployerProfileInput is the employer profile form.
type EmployerProfileInput struct {
	CompanyNameAr string `json:"company_name_ar"`
	CompanyNameEn string `json:"company_name_en"`
	AboutAr       string `json:"about_ar"`
	AboutEn       string `json:"about_en"`
	Website       string `json:"website"`
	City          string `json:"city"`
	LogoURL       string `json:"logo_url"`
}

// CandidateProfileInput is the candidate profile form.
type CandidateProfileInput struct {
	HeadlineAr string `json:"headline_ar"`
	HeadlineEn string `json:"headline_en"`
	BioAr      string `json:"bio_ar"`
	BioEn      string `json:"bio_en"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	CVURL      string `json:"cv_url"`
}

// PageInput is the admin CMS page form.
type PageInput struct {
	TitleAr string `json:"title_ar" binding:"required"`
	TitleEn string `json:"title_en" binding:"required"`
	BodyAr  string `json:"body_ar"`
	BodyEn  string `json:"body_en"`
}

// PostInput is the admin blog post form.
type PostInput struct {
	Slug      string `json:"slug" binding:"required"`
	TitleAr   string `json:"title_ar" binding:"required"`
	TitleEn   string `json:"title_en" binding:"required"`
	BodyAr    string `json:"body_ar"`
	BodyEn    string `json:"body_en"`
	Published bool   `json:"published"`
}

// SettingInput upserts one site settings key.
type SettingInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}
