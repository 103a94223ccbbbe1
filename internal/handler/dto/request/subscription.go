package request

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,max=254"`
	Name  string `json:"name" binding:"required,max=256"`
}
