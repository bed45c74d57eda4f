package notifications

import "github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"

type CreateNotificationRequest struct {
	Sender           string `json:"sender" binding:"required,len=26"`
	Receiver         string `json:"receiver" binding:"required,len=26"`
	Title            string `json:"title" binding:"required,max=50"`
	Message          string `json:"message" binding:"required,max=500"`
	NotificationType string `json:"notification_type" binding:"required,max=20"`
}

func (r CreateNotificationRequest) Notification() *model.Notification {
	return &model.Notification{
		SenderID:         r.Sender,
		ReceiverID:       r.Receiver,
		Title:            r.Title,
		Message:          r.Message,
		NotificationType: r.NotificationType,
	}
}

type BroadcastNotificationRequest struct {
	Sender           string `json:"sender" binding:"required,len=26"`
	Title            string `json:"title" binding:"required,max=50"`
	Message          string `json:"message" binding:"required,max=500"`
	NotificationType string `json:"notification_type" binding:"required,max=20"`
}

type UpdateNotificationRequest struct {
	Title            *string `json:"title" binding:"omitempty,max=50"`
	Message          *string `json:"message" binding:"omitempty,max=500"`
	NotificationType *string `json:"notification_type" binding:"omitempty,max=20"`
	IsRead           *bool   `json:"is_read"`
}

// Updates flattens the request into store column updates.
func (r UpdateNotificationRequest) Updates() map[string]any {
	u := map[string]any{}
	if r.Title != nil {
		u["title"] = *r.Title
	}
	if r.Message != nil {
		u["message"] = *r.Message
	}
	if r.NotificationType != nil {
		u["notification_type"] = *r.NotificationType
	}
	if r.IsRead != nil {
		u["is_read"] = *r.IsRead
	}
	return u
}
