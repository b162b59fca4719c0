package availabilityapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiPrefix = "/api/v1"

// Client клиент HTTP API доступности столиков
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSlots получает слоты заведения на дату (YYYY-MM-DD)
func (c *Client) GetSlots(ctx context.Context, venueID int64, date string) (*Slots, error) {
	endpoint := fmt.Sprintf("%s%s/venues/%d/available-slots?date=%s",
		c.baseURL, apiPrefix, venueID, url.QueryEscape(date))

	var slots Slots
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil, &slots); err != nil {
		return nil, err
	}
	if slots.Degraded {
		c.log.Warn("Availability API returned degraded answer for venue=%d, date=%s", venueID, date)
	}
	return &slots, nil
}

// GetDisabledDates получает недоступные даты в горизонте бронирования
func (c *Client) GetDisabledDates(ctx context.Context, venueID int64) (*DisabledDates, error) {
	endpoint := fmt.Sprintf("%s%s/venues/%d/disabled-dates", c.baseURL, apiPrefix, venueID)

	var dates DisabledDates
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil, &dates); err != nil {
		return nil, err
	}
	return &dates, nil
}

// GetSchedule получает расписание заведения: правила, обычную неделю и закрытия
func (c *Client) GetSchedule(ctx context.Context, venueID int64) (*Schedule, error) {
	endpoint := fmt.Sprintf("%s%s/venues/%d/schedule", c.baseURL, apiPrefix, venueID)

	var schedule Schedule
	if _, err := c.do(ctx, http.MethodGet, endpoint, nil, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Check проверяет, поместится ли компания гостей в слот.
// Ответ 409 (закрыто, не слот, прошлое) возвращается как CheckResult с Fits=false.
func (c *Client) Check(ctx context.Context, venueID int64, req CheckRequest) (*CheckResult, error) {
	endpoint := fmt.Sprintf("%s%s/venues/%d/availability/check", c.baseURL, apiPrefix, venueID)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	var result CheckResult
	if _, err := c.do(ctx, http.MethodPost, endpoint, body, &result, http.StatusConflict); err != nil {
		return nil, err
	}
	return &result, nil
}

// do выполняет запрос и декодирует тело ответа в dst.
// Статусы из accept декодируются так же, как 200.
func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, dst interface{}, accept ...int) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug("%s %s", method, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK || contains(accept, resp.StatusCode):
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		return resp.StatusCode, fmt.Errorf("%w: %s", ErrBadRequest, errorMessage(resp.Body))
	case resp.StatusCode == http.StatusServiceUnavailable:
		return resp.StatusCode, ErrUnavailable
	default:
		return resp.StatusCode, fmt.Errorf("%w: unexpected status code %d: %s",
			ErrInvalidResponse, resp.StatusCode, errorMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return resp.StatusCode, nil
}

func errorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(raw))
}

func contains(codes []int, code int) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}
