package cmd

type Config struct {
	HTTPPort           string
	BackendBaseURL     string
	CredentialFilePath string
	NoticeLimit        int
	AudioEnabled       bool
	PushEnabled        bool
	LoginRatePerMinute float64
	LoginBurst         int
}
