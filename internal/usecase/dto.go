package usecase

type CreateLeadInput struct {
	BrandName    string `json:"brandName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Plan         string `json:"plan"`
	Requirements string `json:"requirements"`
}

// UpdateLeadInput distinguishes "field absent" (nil pointer, no-op) from
// "field present and empty" (explicit clear). Clears are honored for plan,
// requirements, description and the plan dates; the contact fields can be
// changed but never cleared.
type UpdateLeadInput struct {
	BrandName     *string `json:"brandName"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Plan          *string `json:"plan"`
	Requirements  *string `json:"requirements"`
	Description   *string `json:"description"`
	PlanStartDate *string `json:"planStartDate"`
	PlanEndDate   *string `json:"planEndDate"`
}

type RecordPaymentInput struct {
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	Date           string  `json:"date"`
	Note           string  `json:"note"`
	TransactionID  string  `json:"transactionId"`
	ScreenshotData string  `json:"screenshotData"`
}

type IssueCredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type IssueCredentialsOutput struct {
	Username string `json:"username"`
	// Returned exactly once, at issuance. Only the bcrypt hash persists.
	Password string `json:"password"`
}

type ClientLoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RequestDescriptionUpdateInput struct {
	RequestedText       string `json:"requestedText"`
	CurrentDescription  string `json:"currentDescription"`
}
