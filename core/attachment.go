package core

// Attachment is a binary payload (course flyer, gallery image, profile
// picture) carried by a multipart request.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

func (a Attachment) IsZero() bool { return len(a.Content) == 0 }
