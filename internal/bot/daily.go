package bot

import (
	"dbb/internal/content"
	"dbb/internal/providers"
	"dbb/internal/services"
	"fmt"
	"time"
)

const messageSeparator = "━━━━━━━━━━━━━━━━━━━━"

// DailySender composes the day's reading message and fans it out to every
// subscriber. A failed delivery is logged and skipped; it never aborts the
// batch.
type DailySender struct {
	subscribers services.SubscriberServiceInterface
	sender      Sender
	metrics     providers.MetricsProviderInterface
	logger      providers.Logger
	now         func() time.Time
}

func NewDailySender(subscribers services.SubscriberServiceInterface, sender Sender, metrics providers.MetricsProviderInterface, logger providers.Logger) *DailySender {
	return &DailySender{
		subscribers: subscribers,
		sender:      sender,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// ComposeMessage builds the daily reading message for a day of the year.
func ComposeMessage(day int, date time.Time) string {
	reading := content.GetReadingForDay(day, date.Year())
	if reading == "" {
		reading = "Reading not available for this day"
	}

	return fmt.Sprintf(
		"📖 *Bible in a Year — Day %d*\n📅 %s\n\n%s\n\n*Today's Reading:*\n%s\n\n💪 *Word of Encouragement:*\n%s",
		day,
		date.Format("January 2, 2006"),
		messageSeparator,
		reading,
		content.EncouragementForDay(day),
	)
}

// SendToAll delivers today's message to every subscriber and reports how
// many sends succeeded and failed.
func (ds *DailySender) SendToAll() (sent, failed int) {
	now := ds.now().UTC()
	day := now.YearDay()
	message := ComposeMessage(day, now)

	users := ds.subscribers.All()
	ds.metrics.SetSubscribersTotal(len(users))
	ds.logger.Infof(providers.TypeSend, "Sending day %d message to %d subscribers", day, len(users))

	for _, userID := range users {
		if err := ds.sender.SendMessage(userID, message, "Markdown"); err != nil {
			ds.logger.Errorf(providers.TypeSend, "Failed to send daily message to %d: %s", userID, err)
			ds.metrics.IncSendFailures("daily")
			failed++
			continue
		}
		ds.metrics.IncMessagesSent("daily")
		sent++
	}

	ds.logger.Infof(providers.TypeSend, "Daily send finished: %d sent, %d failed", sent, failed)
	return sent, failed
}

// SendReminder delivers a reading reminder to one user.
func (ds *DailySender) SendReminder(userID int64) error {
	day := ds.now().UTC().YearDay()
	message := fmt.Sprintf(
		"⏰ *Reading Reminder*\n\nDon't forget today's reading (day %d)!\nUse /today to see it and /done when you finish.",
		day,
	)
	if err := ds.sender.SendMessage(userID, message, "Markdown"); err != nil {
		ds.metrics.IncSendFailures("reminder")
		return err
	}
	ds.metrics.IncMessagesSent("reminder")
	return nil
}
