package bot

import (
	"dbb/internal/content"
	"dbb/internal/models"
	"dbb/internal/providers"
	"dbb/internal/services"
	"dbb/internal/structures"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

const maxUpdateBodySize = 1 << 20 // 1 MB

// Telegram webhook payload, reduced to the fields the bot reads.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
}

type Chat struct {
	ID int64 `json:"id"`
}

type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text"`
}

type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message"`
}

// Handler dispatches incoming chat commands to the trackers and replies
// through the sender. Every tracker failure degrades to a generic retry
// message, never an error page.
type Handler struct {
	config       *structures.Config
	subscribers  services.SubscriberServiceInterface
	progress     services.ProgressServiceInterface
	quiz         services.QuizServiceInterface
	dailyQuiz    services.DailyQuizServiceInterface
	achievements services.AchievementServiceInterface
	reminders    services.ReminderServiceInterface
	bank         *content.QuestionBank
	sender       Sender
	logger       providers.Logger
	now          func() time.Time
}

func NewHandler(
	conf *structures.Config,
	subscribers services.SubscriberServiceInterface,
	progress services.ProgressServiceInterface,
	quiz services.QuizServiceInterface,
	dailyQuiz services.DailyQuizServiceInterface,
	achievements services.AchievementServiceInterface,
	reminders services.ReminderServiceInterface,
	bank *content.QuestionBank,
	sender Sender,
	logger providers.Logger,
) *Handler {
	return &Handler{
		config:       conf,
		subscribers:  subscribers,
		progress:     progress,
		quiz:         quiz,
		dailyQuiz:    dailyQuiz,
		achievements: achievements,
		reminders:    reminders,
		bank:         bank,
		sender:       sender,
		logger:       logger,
		now:          time.Now,
	}
}

const genericError = "❌ An error occurred. Please try again or use /help to see available commands."

// HandleWebhook is the POST endpoint registered with the platform.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpdateBodySize)

	var update Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusOK)

	if update.Message == nil || update.Message.From == nil {
		return
	}

	msg := update.Message
	h.logger.Infof(providers.TypeBot, "Update %d from user %d: %q", update.UpdateID, msg.From.ID, msg.Text)
	h.quiz.TouchUser(msg.From.ID, msg.From.Username, msg.From.FirstName)

	reply := h.Dispatch(msg.From, msg.Text)
	if reply == "" {
		return
	}
	if err := h.sender.SendMessage(msg.Chat.ID, reply, "Markdown"); err != nil {
		h.logger.Errorf(providers.TypeBot, "Failed to reply to chat %d: %s", msg.Chat.ID, err)
	}
}

// Dispatch routes one message text to its command and returns the reply.
func (h *Handler) Dispatch(from *User, text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return ""
	}

	command := strings.ToLower(fields[0])
	if idx := strings.Index(command, "@"); idx >= 0 {
		command = command[:idx]
	}
	args := fields[1:]

	switch command {
	case "/start":
		return h.startCommand(from)
	case "/help":
		return h.helpCommand()
	case "/subscribe":
		return h.subscribeCommand(from)
	case "/unsubscribe":
		return h.unsubscribeCommand(from)
	case "/status":
		return h.statusCommand(from)
	case "/today":
		return h.todayCommand()
	case "/day":
		return h.dayCommand(args)
	case "/done":
		return h.doneCommand(from)
	case "/progress":
		return h.progressCommand(from)
	case "/streak":
		return h.streakCommand(from)
	case "/quiz":
		return h.quizCommand(from, args, false)
	case "/quiz_restart":
		return h.quizCommand(from, args, true)
	case "/answer":
		return h.answerCommand(from, args)
	case "/quiz_stop":
		return h.quizStopCommand(from)
	case "/daily":
		return h.dailyCommand(from)
	case "/dailyanswer":
		return h.dailyAnswerCommand(from, args)
	case "/achievements":
		return h.achievementsCommand(from)
	case "/leaderboard":
		return h.leaderboardCommand()
	case "/remind":
		return h.remindCommand(from, args)
	case "/remind_off":
		return h.remindOffCommand(from)
	case "/reminders":
		return h.remindersCommand(from)
	case "/verse":
		return h.verseCommand(args)
	default:
		if strings.HasPrefix(command, "/") {
			return "🤔 Unknown command. Use /help to see what I can do."
		}
		return h.queryCommand(text)
	}
}

var dayQueryRe = regexp.MustCompile(`\bday\s+(\d+)\b`)

// queryCommand handles free text: "day N" and "today" phrasings resolve to
// the reading, anything else is matched against the Q&A topics.
func (h *Handler) queryCommand(text string) string {
	lower := strings.ToLower(text)
	now := h.now().UTC()

	if m := dayQueryRe.FindStringSubmatch(lower); m != nil {
		if day, err := cast.ToIntE(m[1]); err == nil && day >= 1 && day <= content.DaysInYear(now.Year()) {
			date := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day-1)
			return ComposeMessage(day, date)
		}
	}

	for _, word := range strings.Fields(lower) {
		switch strings.Trim(word, ".,!?'\"") {
		case "today", "todays", "today's", "current", "now":
			return h.todayCommand()
		}
	}

	if answer, ok := content.FindAnswer(text); ok {
		var b strings.Builder
		fmt.Fprintf(&b, "❓ *%s*\n\n%s\n\n📖 *Bible References:*", answer.Question, answer.Answer)
		for _, reference := range answer.References {
			b.WriteString("\n\n" + reference)
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString("I can help you with Bible readings! Try:\n\n" +
		"• /today — today's reading\n" +
		"• /day 45 — reading for day 45\n" +
		"• /subscribe — daily messages\n" +
		"• /help — all commands\n\n" +
		"You can also ask me questions like:")
	for _, topic := range content.Topics()[:3] {
		b.WriteString("\n• " + topic)
	}
	return b.String()
}

func (h *Handler) startCommand(from *User) string {
	name := from.FirstName
	if name == "" {
		name = "friend"
	}
	return fmt.Sprintf(
		"Welcome to the Bible in a Year Bot, %s! 🙏\n\n"+
			"I send a daily reading plan that takes you through the whole Bible in one year.\n\n"+
			"Use /subscribe to receive the daily reading, /today to see today's assignment, and /help for everything else.",
		name,
	)
}

func (h *Handler) helpCommand() string {
	return "📖 *Commands*\n\n" +
		"/today — today's reading\n" +
		"/day N — reading for day N\n" +
		"/done — mark today's reading completed\n" +
		"/progress — your yearly progress\n" +
		"/streak — current and longest streak\n" +
		"/subscribe — daily reading messages\n" +
		"/unsubscribe — stop daily messages\n" +
		"/quiz — start a quiz\n" +
		"/answer N — answer the current question\n" +
		"/quiz_stop — stop the quiz\n" +
		"/daily — today's daily challenge\n" +
		"/dailyanswer N — answer the daily challenge\n" +
		"/achievements — your badges\n" +
		"/leaderboard — daily challenge top list\n" +
		"/remind HH:MM — set a reading reminder\n" +
		"/remind_off — disable reminders\n" +
		"/verse — verse of the day, or /verse <keyword> to search"
}

func (h *Handler) subscribeCommand(from *User) string {
	if !h.subscribers.Add(from.ID) {
		return genericError
	}
	return "✅ Subscribed! You'll receive the daily reading every morning."
}

func (h *Handler) unsubscribeCommand(from *User) string {
	if !h.subscribers.Remove(from.ID) {
		return "You weren't subscribed. Use /subscribe to join."
	}
	return "👋 Unsubscribed. Use /subscribe any time to come back."
}

func (h *Handler) statusCommand(from *User) string {
	if h.subscribers.IsSubscribed(from.ID) {
		return "✅ You are subscribed to daily readings."
	}
	return "You are not subscribed. Use /subscribe to join."
}

func (h *Handler) todayCommand() string {
	now := h.now().UTC()
	return ComposeMessage(now.YearDay(), now)
}

func (h *Handler) dayCommand(args []string) string {
	year := h.now().UTC().Year()
	days := content.DaysInYear(year)

	if len(args) == 0 {
		return fmt.Sprintf("Usage: /day N (1-%d)", days)
	}
	day, err := cast.ToIntE(args[0])
	if err != nil || day < 1 || day > days {
		return fmt.Sprintf("❌ Invalid day number. Please enter a number between 1 and %d.", days)
	}

	reading := content.GetReadingForDay(day, year)
	return fmt.Sprintf("📖 *Day %d Reading:*\n%s", day, reading)
}

func (h *Handler) doneCommand(from *User) string {
	day := h.now().UTC().YearDay()
	if !h.progress.MarkDayCompleted(from.ID, day, 0) {
		return genericError
	}

	reply := fmt.Sprintf("✅ Day %d marked as completed! Great job!", day)
	if streak := h.progress.CurrentStreak(from.ID, 0); streak > 1 {
		reply += fmt.Sprintf("\n🔥 You're on a %d-day streak!", streak)
	}
	reply += h.formatNewAchievements(h.achievements.CheckAndAward(from.ID))
	return reply
}

func (h *Handler) progressCommand(from *User) string {
	p := h.progress.UserProgress(from.ID, 0)
	bar := progressBar(p.CompletionPercentage, 20)
	reply := fmt.Sprintf(
		"📊 *Your Reading Progress*\n\n%s\n\n%s %.1f%%\n\nDays completed: %d\nCurrent streak: %d\nLongest streak: %d",
		messageSeparator,
		bar,
		p.CompletionPercentage,
		p.TotalCompleted,
		h.progress.CurrentStreak(from.ID, 0),
		h.progress.LongestStreak(from.ID, 0),
	)
	if p.LastCompleted != nil {
		reply += fmt.Sprintf("\nLast completed: day %d", *p.LastCompleted)
	}
	return reply
}

func (h *Handler) streakCommand(from *User) string {
	return fmt.Sprintf(
		"🔥 Current streak: %d days\n🏅 Longest streak: %d days",
		h.progress.CurrentStreak(from.ID, 0),
		h.progress.LongestStreak(from.ID, 0),
	)
}

func (h *Handler) quizCommand(from *User, args []string, force bool) string {
	difficulty, category := "", ""
	if len(args) > 0 {
		difficulty = strings.ToLower(args[0])
	}
	if len(args) > 1 {
		category = strings.ToLower(args[1])
	}

	if !force && h.quiz.Session(from.ID) != nil {
		return "🎯 *You already have an active quiz!*\n\nAnswer the current question with /answer or use /quiz_stop to end it."
	}

	q, index := h.bank.Random(difficulty, category)
	if q == nil {
		return "❌ No questions match that difficulty/category."
	}
	if !h.quiz.StartSession(from.ID, index, q, difficulty, category, force) {
		return genericError
	}
	return "🎯 *Quiz started!*\n\n" + formatQuestion(q, 1, h.config.Quiz.MaxQuestions)
}

func (h *Handler) answerCommand(from *User, args []string) string {
	session := h.quiz.Session(from.ID)
	if session == nil {
		return "No active quiz. Start one with /quiz!"
	}
	if len(args) == 0 {
		return "Usage: /answer N"
	}

	q := session.QuestionData
	if q == nil {
		return genericError
	}
	choice, err := cast.ToIntE(args[0])
	if err != nil || choice < 1 || choice > len(q.Options) {
		return fmt.Sprintf("❌ Please answer with a number between 1 and %d.", len(q.Options))
	}

	score := session.Score
	reply := ""
	if choice-1 == q.Correct {
		score++
		reply = "✅ Correct!"
	} else {
		reply = fmt.Sprintf("❌ Not quite — the answer was *%s*.", q.Options[q.Correct])
	}
	if q.Reference != "" {
		reply += fmt.Sprintf(" (%s)", q.Reference)
	}

	total := session.Total + 1
	if !h.quiz.UpdateSession(from.ID, score, total) {
		return genericError
	}

	if total >= h.config.Quiz.MaxQuestions {
		return reply + "\n\n" + h.finishQuiz(from, true)
	}

	next, index := h.bank.Random(session.Difficulty, session.Category)
	if next == nil || !h.quiz.AdvanceSession(from.ID, index, next) {
		return reply + "\n\n" + h.finishQuiz(from, true)
	}
	return reply + "\n\n" + formatQuestion(next, total+1, h.config.Quiz.MaxQuestions)
}

func (h *Handler) quizStopCommand(from *User) string {
	reply := h.finishQuiz(from, false)
	if reply == "" {
		return "No active quiz to stop."
	}
	return reply
}

// finishQuiz ends the session, writes history and cumulative score, and
// formats the summary. completed marks a full-length run.
func (h *Handler) finishQuiz(from *User, completed bool) string {
	session := h.quiz.EndSession(from.ID)
	if session == nil {
		return ""
	}

	if session.Total > 0 {
		h.quiz.RecordHistory(from.ID, session)
		var totals *services.SessionTotals
		if completed {
			totals = &services.SessionTotals{Score: session.Score, Total: session.Total}
		}
		h.quiz.UpdateScore(from.ID, session.Score, session.Total, totals)
	}

	accuracy := 0.0
	if session.Total > 0 {
		accuracy = float64(session.Score) / float64(session.Total) * 100
	}
	reply := fmt.Sprintf("🏁 *Quiz finished!*\nScore: %d/%d (%.0f%%)", session.Score, session.Total, accuracy)
	reply += h.formatNewAchievements(h.achievements.CheckAndAward(from.ID))
	return reply
}

func (h *Handler) dailyCommand(from *User) string {
	if h.dailyQuiz.HasCompletedToday(from.ID) {
		stats := h.dailyQuiz.Stats(from.ID)
		return fmt.Sprintf(
			"✅ You already completed today's challenge!\n\n🏆 Completed: %d\n🔥 Streak: %d\n💯 Best score: %.0f%%",
			stats.TotalCompleted, stats.CurrentStreak, stats.BestScore,
		)
	}

	q := h.dailyQuiz.TodayQuestion()
	if q == nil {
		return genericError
	}
	return "🌟 *Daily Challenge*\n\n" + formatQuestionOptions(q) + "\n\nAnswer with /dailyanswer N"
}

func (h *Handler) dailyAnswerCommand(from *User, args []string) string {
	if h.dailyQuiz.HasCompletedToday(from.ID) {
		return "✅ You already completed today's challenge. Come back tomorrow!"
	}

	q := h.dailyQuiz.TodayQuestion()
	if q == nil {
		return genericError
	}
	if len(args) == 0 {
		return "Usage: /dailyanswer N"
	}
	choice, err := cast.ToIntE(args[0])
	if err != nil || choice < 1 || choice > len(q.Options) {
		return fmt.Sprintf("❌ Please answer with a number between 1 and %d.", len(q.Options))
	}

	score := 0
	reply := ""
	if choice-1 == q.Correct {
		score = 1
		reply = "✅ Correct!"
	} else {
		reply = fmt.Sprintf("❌ Not quite — the answer was *%s*.", q.Options[q.Correct])
	}
	if q.Reference != "" {
		reply += fmt.Sprintf(" (%s)", q.Reference)
	}

	if !h.dailyQuiz.MarkCompleted(from.ID, score, 1) {
		return genericError
	}

	stats := h.dailyQuiz.Stats(from.ID)
	reply += fmt.Sprintf("\n\n🔥 Daily challenge streak: %d", stats.CurrentStreak)
	reply += h.formatNewAchievements(h.achievements.CheckAndAward(from.ID))
	return reply
}

func (h *Handler) achievementsCommand(from *User) string {
	ua := h.achievements.UserAchievements(from.ID)
	unlocked := make(map[string]struct{}, len(ua.Unlocked))

	var b strings.Builder
	b.WriteString("🏆 *Your Achievements*\n\n")
	b.WriteString(messageSeparator + "\n\n")

	if len(ua.Unlocked) > 0 {
		b.WriteString("*✅ Unlocked:*\n\n")
		for _, id := range ua.Unlocked {
			unlocked[id] = struct{}{}
			achievement, ok := services.AchievementByID(id)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "%s *%s*\n   %s\n", achievement.Emoji, achievement.Name, achievement.Description)
			if at, ok := ua.UnlockedAt[id]; ok {
				if t, err := time.Parse(time.RFC3339, at); err == nil {
					fmt.Fprintf(&b, "   📅 Unlocked: %s\n", t.Format("January 2, 2006"))
				}
			}
			b.WriteString("\n")
		}
		b.WriteString(messageSeparator + "\n\n")
	}

	locked := false
	for _, achievement := range services.Catalogue {
		if _, has := unlocked[achievement.ID]; has {
			continue
		}
		if !locked {
			b.WriteString("*🔒 Locked:*\n\n")
			locked = true
		}
		fmt.Fprintf(&b, "🔒 %s\n   %s\n\n", achievement.Name, achievement.Description)
	}

	return strings.TrimRight(b.String(), "\n")
}

func (h *Handler) leaderboardCommand() string {
	entries := h.dailyQuiz.Leaderboard(h.config.Quiz.TopN)
	if len(entries) == 0 {
		return "No daily challenge results yet. Be the first with /daily!"
	}

	var b strings.Builder
	b.WriteString("🏆 *Daily Challenge Leaderboard*\n\n")
	medals := []string{"🥇", "🥈", "🥉"}
	for i, entry := range entries {
		rank := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			rank = medals[i]
		}
		name := entry.UserID
		if userID, err := cast.ToInt64E(entry.UserID); err == nil {
			score := h.quiz.UserScore(userID)
			if score.FirstName != "" {
				name = score.FirstName
			} else if score.Username != "" {
				name = "@" + score.Username
			}
		}
		fmt.Fprintf(&b, "%s %s — %d completed, %.0f%% accuracy\n", rank, name, entry.TotalCompleted, entry.AvgAccuracy)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *Handler) remindCommand(from *User, args []string) string {
	if len(args) == 0 {
		return "Usage: /remind HH:MM (e.g. /remind 7:30 or /remind 8pm)"
	}

	hour, minute, ok := services.ParseTimeString(strings.Join(args, " "))
	if !ok {
		return "❌ I couldn't parse that time. Try something like 7:30, 8am or 21:00."
	}
	if !h.reminders.SetReminder(from.ID, hour, minute) {
		return genericError
	}
	return fmt.Sprintf("⏰ Reminder set for %02d:%02d UTC every day.", hour, minute)
}

func (h *Handler) remindOffCommand(from *User) string {
	if !h.reminders.DisableReminders(from.ID) {
		return genericError
	}
	return "🔕 Reminders disabled."
}

func (h *Handler) remindersCommand(from *User) string {
	settings := h.reminders.UserReminders(from.ID)
	if !settings.Enabled || len(settings.Times) == 0 {
		return "You have no active reminders. Set one with /remind HH:MM."
	}
	return "⏰ Your reminders (UTC): " + strings.Join(settings.Times, ", ")
}

func (h *Handler) verseCommand(args []string) string {
	if len(args) == 0 {
		v := content.VerseOfTheDay(h.now().UTC().YearDay())
		return fmt.Sprintf("📜 *Verse of the Day*\n\n_%s_\n— %s", v.Text, v.Reference)
	}

	query := strings.Join(args, " ")
	if v, ok := content.VerseByReference(query); ok {
		return fmt.Sprintf("📜 _%s_\n— %s", v.Text, v.Reference)
	}

	matches := content.SearchVerses(query)
	if len(matches) == 0 {
		return "No verses found for that search."
	}
	if len(matches) > 3 {
		matches = matches[:3]
	}
	var b strings.Builder
	b.WriteString("📜 *Verses found:*\n")
	for _, v := range matches {
		fmt.Fprintf(&b, "\n_%s_\n— %s\n", v.Text, v.Reference)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (h *Handler) formatNewAchievements(ids []string) string {
	if len(ids) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\n🎉 *Achievement unlocked!*")
	for _, id := range ids {
		if achievement, ok := services.AchievementByID(id); ok {
			fmt.Fprintf(&b, "\n%s %s — %s", achievement.Emoji, achievement.Name, achievement.Description)
		}
	}
	return b.String()
}

func formatQuestion(q *models.Question, number, of int) string {
	return fmt.Sprintf("*Question %d/%d*\n\n%s\n\nReply with /answer N", number, of, formatQuestionOptions(q))
}

func formatQuestionOptions(q *models.Question) string {
	var b strings.Builder
	b.WriteString(q.Question)
	for i, option := range q.Options {
		fmt.Fprintf(&b, "\n%d. %s", i+1, option)
	}
	return b.String()
}

func progressBar(percentage float64, length int) string {
	filled := int(percentage / 100 * float64(length))
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}
