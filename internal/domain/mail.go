package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type OrderConfirmationMailData struct {
	CustomerName string `json:"customerName"`
	Reference    string `json:"reference"`
	TotalAmount  string `json:"totalAmount"`
}
