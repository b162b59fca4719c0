package get_venue_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TableAvailability/internal/availability"
)

// UseCase use case получения расписания заведения.
// Показывает, какое правило обслуживает каждый день недели, и помогает найти
// правила, которые движок пропускает как некорректные.
type UseCase struct {
	loader       CalendarLoader
	engine       Engine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(loader CalendarLoader, engine Engine, logger Logger) *UseCase {
	return &UseCase{
		loader:       loader,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetVenueSchedule: venue=%d", req.VenueID)

	// 1. Валидация входных данных
	if req.VenueID <= 0 {
		uc.logger.Warn("GetVenueSchedule: invalid venue id=%d", req.VenueID)
		return nil, fmt.Errorf("%w: venue_id must be positive", ErrInvalidInput)
	}

	// 2. Загружаем правила и исключения на горизонт бронирования
	opts := uc.engine.Options()
	from := opts.Today(uc.timeProvider.Now())
	lastDay := opts.HorizonEnd(from).AddDate(0, 0, -1)

	data, err := uc.loader.LoadCalendar(ctx, req.VenueID, from, lastDay)
	if err != nil {
		uc.logger.Error("GetVenueSchedule: failed to load rules for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	// 3. Разбираем неделю тем же способом, что и расчет слотов
	week := uc.engine.WeeklySchedule(data.Rules)

	invalid := make(map[int64]string, len(week.SkippedRules))
	for _, skipped := range week.SkippedRules {
		uc.logger.Warn("GetVenueSchedule: malformed rule id=%d: %v", skipped.RuleID, skipped.Err)
		invalid[skipped.RuleID] = skipped.Err.Error()
	}

	// 4. Формируем ответ
	resp := &Response{
		VenueID:    req.VenueID,
		Settings:   settingsFrom(opts),
		Rules:      make([]Rule, 0, len(data.Rules)),
		Week:       make([]Day, 0, len(week.Days)),
		Exceptions: data.Exceptions.Dates(),
	}

	for _, r := range data.Rules {
		if r == nil {
			continue
		}
		errText, bad := invalid[r.ID]
		resp.Rules = append(resp.Rules, Rule{
			ID:              r.ID,
			Weekdays:        r.WeekdayNames,
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			IntervalMinutes: r.IntervalMinutes,
			Capacity:        r.Capacity,
			Valid:           !bad,
			Error:           errText,
		})
	}

	for _, d := range week.Days {
		day := Day{
			Weekday:         d.Weekday,
			Open:            d.Open,
			ClosedReason:    string(d.ClosedReason),
			CalendarEnabled: d.CalendarEnabled,
			Times:           d.Times,
		}
		if d.Rule != nil {
			id := d.Rule.ID
			day.RuleID = &id
		}
		resp.Week = append(resp.Week, day)
	}

	uc.logger.Info("GetVenueSchedule: venue=%d, rules=%d (invalid=%d), exceptions=%d",
		req.VenueID, len(resp.Rules), len(invalid), len(resp.Exceptions))

	return resp, nil
}

func settingsFrom(opts availability.Options) Settings {
	return Settings{
		ReferenceStart:            opts.ReferenceStart,
		ReferenceEnd:              opts.ReferenceEnd,
		AssumedDurationMinutes:    opts.AssumedDurationMinutes,
		GranularityMinutes:        opts.GranularityMinutes,
		DefaultReservationMinutes: opts.DefaultReservationMinutes,
		SameDayCutoff:             opts.SameDayCutoff,
		HorizonDays:               opts.HorizonDays,
		FallbackToFirstRule:       opts.FallbackToFirstRule,
		Timezone:                  opts.Location.String(),
	}
}
