package dto

type AdminLoginRequest struct {
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Success bool `json:"success"`
}

type AdminStatusResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

type MeResponse struct {
	UserID *string `json:"userId"`
}

type CreateProjectRequest struct {
	Name string `json:"name"`
}

type CreateMemberRequest struct {
	Name           string `json:"name"`
	WhatsappNumber string `json:"whatsappNumber"`
	ProjectID      string `json:"projectId"`
	SectionNumber  *int   `json:"sectionNumber,omitempty"`
	PhotoURL       string `json:"photoUrl,omitempty"`
	DeviceID       string `json:"deviceId"`
}

// ErrorResponse is the uniform error body: a message under "error" with the
// HTTP status carrying the category.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
