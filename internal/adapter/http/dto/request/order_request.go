package request

// StartOrderRequest opens a new order session, replacing any in progress.
type StartOrderRequest struct {
	UserID     int64  `json:"user_id" binding:"required"`
	CategoryID string `json:"category_id" binding:"required"`
}

// SelectHeaderRequest picks the customer/contractor header block.
type SelectHeaderRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

// TextInputRequest carries one line of free-form input; the session's
// current step decides which field it fills.
type TextInputRequest struct {
	Text string `json:"text" binding:"required"`
}

// ToggleRequest flips the selection state of a catalog item. Index is a
// pointer so 0 survives required-binding.
type ToggleRequest struct {
	Index *int `json:"index" binding:"required"`
}

// PhotoDecisionRequest answers whether the vehicle photos will be attached.
type PhotoDecisionRequest struct {
	AttachPhotos *bool `json:"attach_photos" binding:"required"`
}

// AttachPhotoRequest uploads one vehicle photo. FileRef identifies the
// underlying image on the sender's side and drives duplicate detection;
// Content is the raw image, base64 in JSON.
type AttachPhotoRequest struct {
	FileRef string `json:"file_ref" binding:"required"`
	Content []byte `json:"content" binding:"required"`
}
