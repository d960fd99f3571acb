package dto

const (
	ContentTypeText = "Text"
	ContentTypeHTML = "HTML"
)

type EmailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type Recipient struct {
	EmailAddress EmailAddress `json:"emailAddress"`
}

type ItemBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type Message struct {
	ID               string      `json:"id,omitempty"`
	Subject          string      `json:"subject,omitempty"`
	BodyPreview      string      `json:"bodyPreview,omitempty"`
	Body             *ItemBody   `json:"body,omitempty"`
	From             *Recipient  `json:"from,omitempty"`
	ToRecipients     []Recipient `json:"toRecipients,omitempty"`
	IsRead           *bool       `json:"isRead,omitempty"`
	ReceivedDateTime string      `json:"receivedDateTime,omitempty"`
	ParentFolderID   string      `json:"parentFolderId,omitempty"`
}

type MessageCollection struct {
	Value []Message `json:"value"`
}

type SendMailRequest struct {
	Message         Message `json:"message"`
	SaveToSentItems bool    `json:"saveToSentItems"`
}

type MoveMessageRequest struct {
	DestinationID string `json:"destinationId"`
}

// UpdateMessageRequest patches the read flag and nothing else.
type UpdateMessageRequest struct {
	IsRead bool `json:"isRead"`
}

type ReplyMessageRequest struct {
	Comment string `json:"comment"`
}

type ForwardMessageRequest struct {
	Comment      string      `json:"comment"`
	ToRecipients []Recipient `json:"toRecipients"`
}

// ToRecipients maps plain addresses onto the service's recipient shape.
func ToRecipients(addresses []string) []Recipient {
	recipients := make([]Recipient, 0, len(addresses))
	for _, address := range addresses {
		recipients = append(recipients, Recipient{
			EmailAddress: EmailAddress{Address: address},
		})
	}
	return recipients
}
