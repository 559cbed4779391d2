package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
	Count     int   `json:"count"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Passwords []GeneratedPassword `json:"passwords"`
}

// GeneratedPassword is a single password with its strength rating.
type GeneratedPassword struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest asks for the strength of an existing password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse describes a strength score and how to display it.
type StrengthResponse struct {
	Score   int     `json:"score"`
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}
