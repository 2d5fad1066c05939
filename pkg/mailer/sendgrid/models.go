package sendgrid

// Body content MIME types accepted by the Mail Send API.
const (
	ContentTypeText = "text/plain"
	ContentTypeHTML = "text/html"
)

// Disposition controls how an attachment is rendered by the mail client.
type Disposition string

const (
	// DispositionAttachment shows the file as a downloadable attachment.
	DispositionAttachment Disposition = "attachment"

	// DispositionInline embeds the file into the message body (referenced by content ID).
	DispositionInline Disposition = "inline"
)

// Address is a single email participant.
type Address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Personalization groups recipients with their template data.
type Personalization struct {
	DynamicTemplateData any       `json:"dynamic_template_data,omitempty"`
	To                  []Address `json:"to"`
	Cc                  []Address `json:"cc,omitempty"`
	Bcc                 []Address `json:"bcc,omitempty"`
}

// Attachment is a file attached to the message. Content is base64-encoded.
type Attachment struct {
	Content     string      `json:"content"`
	Filename    string      `json:"filename"`
	Type        string      `json:"type"`
	Disposition Disposition `json:"disposition"`
	ContentID   string      `json:"content_id,omitempty"`
}

// Content is one body variant of the message.
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// ASM holds unsubscribe group settings.
type ASM struct {
	GroupsToDisplay []int `json:"groups_to_display,omitempty"`
	GroupID         int   `json:"group_id"`
}

// Setting is a single on/off toggle.
type Setting struct {
	Enable bool `json:"enable"`
}

// MailSettings toggles delivery behaviour for the whole message.
type MailSettings struct {
	BypassListManagement *Setting `json:"bypass_list_management,omitempty"`
	Footer               *Setting `json:"footer,omitempty"`
	SandboxMode          *Setting `json:"sandbox_mode,omitempty"`
}

// ClickTracking configures link rewriting.
type ClickTracking struct {
	Enable     bool `json:"enable"`
	EnableText bool `json:"enable_text"`
}

// OpenTracking configures the tracking pixel.
type OpenTracking struct {
	SubstitutionTag string `json:"substitution_tag,omitempty"`
	Enable          bool   `json:"enable"`
}

// TrackingSettings configures engagement tracking.
type TrackingSettings struct {
	ClickTracking        *ClickTracking `json:"click_tracking,omitempty"`
	OpenTracking         *OpenTracking  `json:"open_tracking,omitempty"`
	SubscriptionTracking *Setting       `json:"subscription_tracking,omitempty"`
}

// Payload is the request body of POST /v3/mail/send.
// Every optional section is omitted from the JSON when unset.
type Payload struct {
	From             *Address          `json:"from,omitempty"`
	ReplyTo          *Address          `json:"reply_to,omitempty"`
	ASM              *ASM              `json:"asm,omitempty"`
	MailSettings     *MailSettings     `json:"mail_settings,omitempty"`
	TrackingSettings *TrackingSettings `json:"tracking_settings,omitempty"`
	Subject          string            `json:"subject,omitempty"`
	TemplateID       string            `json:"template_id,omitempty"`
	BatchID          string            `json:"batch_id,omitempty"`
	IPPoolName       string            `json:"ip_pool_name,omitempty"`
	Personalizations []Personalization `json:"personalizations"`
	Attachments      []Attachment      `json:"attachments,omitempty"`
	Categories       []string          `json:"categories,omitempty"`
	Content          []Content         `json:"content,omitempty"`
	SendAt           int64             `json:"send_at,omitempty"`
}
