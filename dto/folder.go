package dto

type MailFolder struct {
	ID              string `json:"id,omitempty"`
	DisplayName     string `json:"displayName"`
	ParentFolderID  string `json:"parentFolderId,omitempty"`
	TotalItemCount  int    `json:"totalItemCount,omitempty"`
	UnreadItemCount int    `json:"unreadItemCount,omitempty"`
}

type MailFolderCollection struct {
	Value []MailFolder `json:"value"`
}

type CreateFolderRequest struct {
	DisplayName string `json:"displayName"`
}
