package requests

type SendPenpalRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Sender   string `json:"-"`
}

type RespondPenpalRequest struct {
	Action    string `json:"action" validate:"required,oneof=accept decline"`
	RequestID string `json:"-"`
	Username  string `json:"-"`
}

type SendPenpalMessage struct {
	Body      string `json:"body" validate:"required,min=1,max=4000"`
	Sender    string `json:"-"`
	Recipient string `json:"-"`
}

type ListPenpalMessages struct {
	Username string
	Friend   string
}
