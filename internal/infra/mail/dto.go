package mail

type LeadAlertData struct {
	LeadID    int
	BrandName string
	Email     string
	Phone     string
	Plan      string
}

type WelcomeData struct {
	BrandName string
}

type CredentialsData struct {
	BrandName string
	Username  string
	Password  string
}

type DescriptionRequestData struct {
	LeadID        int
	BrandName     string
	Email         string
	RequestedText string
}

type EmailSender struct {
	Host        string
	Port        int
	User        string
	Password    string
	From        string
	TemplateDir string
}
