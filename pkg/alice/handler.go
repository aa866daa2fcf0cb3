package alice

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/dates"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/schedule"
	"github.com/nodax-hub/SSAU-Schedule-Bot/pkg/scraper"
)

// DayProvider answers day queries; the scraper Service satisfies it.
type DayProvider interface {
	GetDay(ctx context.Context, groupID int, date time.Time) (schedule.Day, error)
}

const (
	textGreeting = `Привет. Для того чтобы узнать своё расписание просто спроси меня: "расписание на сегодня". Если возникнут вопросы скажите помощь.`
	textHelp     = `Для того чтобы я могла сказать ваше расписание, мне необходимо получить от вас id группы. Затем вы можете попросить меня сказать расписание на сегодня или на завтра.`
	textThanks   = `Всегда рада помочь.`
	textAskGroup = `Напиши мне id своей группы.`
	textGroupSet = `Вы успешно сменили id своей группы.`

	textUnresolvedDate = `Не могу определить дату из вашего сообщения. Пожалуйста, укажите день или диапазон дат.`
	textRemoteError    = `Извините сайт не отвечает, проверьте указанный вами id группы, попробуйте позже или, если проблема не исчезнет, свяжитесь с разработчиком.`
	textConnError      = `Не удаётся установить соединение с сайтом. Попробуйте позже или свяжитесь с разработчиком.`
)

// Handler is the webhook conversation state machine.
type Handler struct {
	days   DayProvider
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler builds a Handler around a day provider.
func NewHandler(days DayProvider, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{days: days, logger: logger, now: time.Now}
}

// Handle processes one webhook turn. It never returns an error: every
// failure becomes an apology the assistant can read out.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	phrase := strings.ToLower(strings.TrimSpace(req.Request.OriginalUtterance))

	var text string
	endSession := false
	stateUpdate := map[string]any{}

	switch {
	case req.Session.New && phrase == "":
		text = textGreeting

	case strings.Contains(phrase, "помощь"):
		text = textHelp

	case strings.Contains(phrase, "спасибо"):
		text = textThanks
		endSession = true

	case isDigits(phrase):
		// A numeric-only utterance always means "set my group id"; it is
		// never treated as a date phrase.
		groupID, _ := strconv.Atoi(phrase)
		stateUpdate["group_id"] = groupID
		text = textGroupSet

	case req.State.User.GroupID == 0:
		text = textAskGroup

	default:
		text = h.scheduleForPhrase(ctx, phrase, req.State.User.GroupID)
	}

	return Response{
		Version: req.Version,
		Session: req.Session,
		Response: Payload{
			Text:       text,
			EndSession: endSession,
		},
		UserStateUpdate: stateUpdate,
	}
}

func (h *Handler) scheduleForPhrase(ctx context.Context, phrase string, groupID int) string {
	date, err := dates.Resolve(phrase, h.now())
	if err != nil {
		return textUnresolvedDate
	}

	day, err := h.days.GetDay(ctx, groupID, date)
	if err != nil {
		h.logger.Warn("day query failed",
			zap.Int("group_id", groupID),
			zap.Time("date", date),
			zap.Error(err))

		var remote *scraper.RemoteServiceError
		if errors.As(err, &remote) {
			return textRemoteError
		}
		var conn *scraper.ConnectivityError
		if errors.As(err, &conn) {
			return textConnError
		}
		return textRemoteError
	}

	return SpokenDay(day)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
