package support

type OpenTicketRequest struct {
	Subject string `json:"subject" binding:"notblank,max=200"`
	Text    string `json:"text" binding:"notblank"`
}

type SendMessageRequest struct {
	Text string `json:"text" binding:"notblank"`
}
