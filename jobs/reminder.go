package jobs

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/vamshikittu22/Wanderlusttrails-sub001/models"
)

// SendFunc delivers one reminder email. Production wiring uses
// utils.SendEmail; tests substitute a fake.
type SendFunc func(to, subject, body string) error

var ErrAlreadySent = errors.New("reminder already sent")

// ReminderScheduler wakes up on an interval and emails owners of todos due
// the next day.
type ReminderScheduler struct {
	DB       *gorm.DB
	Send     SendFunc
	Interval time.Duration
}

// Start runs the scheduler loop until stop is closed.
func (s *ReminderScheduler) Start(stop <-chan struct{}) {
	interval := s.Interval
	if interval == 0 {
		interval = time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := SendDueReminders(s.DB, s.Send); err != nil {
				log.Printf("reminder run failed: %v", err)
			} else if n > 0 {
				log.Printf("sent %d todo reminders", n)
			}
		case <-stop:
			return
		}
	}
}

// SendDueReminders emails every todo due tomorrow that has not been reminded
// yet. The reminder_sent flag is flipped per row right after a successful
// send, so a failure mid-run does not re-notify rows already handled on the
// next run. Returns the number of reminders sent.
func SendDueReminders(db *gorm.DB, send SendFunc) (int, error) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	dayStart := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var todos []models.Todo
	err := db.Preload("User").
		Where("due_date >= ? AND due_date < ? AND reminder_sent = ? AND completed = ?", dayStart, dayEnd, false, false).
		Find(&todos).Error
	if err != nil {
		return 0, err
	}

	sent := 0
	for i := range todos {
		if err := deliverReminder(db, send, &todos[i]); err != nil {
			log.Printf("reminder for todo %d failed: %v", todos[i].ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}

// RemindTodo is the on-demand path: the identical send-then-flag sequence
// for a single todo.
func RemindTodo(db *gorm.DB, send SendFunc, todoID, userID uint) error {
	var todo models.Todo
	if err := db.Preload("User").Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
		return err
	}
	if todo.ReminderSent {
		return ErrAlreadySent
	}
	return deliverReminder(db, send, &todo)
}

func deliverReminder(db *gorm.DB, send SendFunc, todo *models.Todo) error {
	subject := "Reminder: " + todo.Title
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your task <strong>%s</strong> is due on %s.</p><p>— Wanderlust Trails</p>",
		todo.User.FirstName, todo.Title, todo.DueDate.Format("2006-01-02"),
	)

	if err := send(todo.User.Email, subject, body); err != nil {
		return err
	}

	return db.Model(todo).Update("reminder_sent", true).Error
}
