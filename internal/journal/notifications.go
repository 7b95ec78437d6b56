package journal

import "fxjournal/internal/models"

// Notifications returns the activity feed, newest first.
func (s *Service) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *Service) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int
	for _, note := range s.notifications {
		if !note.Read {
			n++
		}
	}
	return n
}

// MarkAllNotificationsRead flags every notification as read.
func (s *Service) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// notify prepends an unread entry to the feed. Ids follow the same
// max+1 rule as trades. Callers hold the mutex.
func (s *Service) notify(message string) {
	maxID := 0
	for _, n := range s.notifications {
		if n.ID > maxID {
			maxID = n.ID
		}
	}
	note := models.Notification{
		ID:      maxID + 1,
		Message: message,
		Time:    s.now(),
	}
	s.notifications = append([]models.Notification{note}, s.notifications...)
}
