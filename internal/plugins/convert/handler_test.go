package convert

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/keyxmakerx/almanac/internal/apperror"
	"github.com/keyxmakerx/almanac/internal/calendars"
)

// mockConvertService lets each test stub exactly the methods it exercises.
type mockConvertService struct {
	listFn    func() []calendars.Descriptor
	getFn     func(id calendars.ID) (*calendars.Descriptor, error)
	todayFn   func(id calendars.ID) (*TodayResponse, error)
	convertFn func(req ConvertRequest) (*ConvertResponse, error)
	formatFn  func(req FormatRequest) (*FormatResponse, error)
	parseFn   func(req ParseRequest) (*ParseResponse, error)
}

func (m *mockConvertService) ListCalendars() []calendars.Descriptor { return m.listFn() }
func (m *mockConvertService) GetCalendar(id calendars.ID) (*calendars.Descriptor, error) {
	return m.getFn(id)
}
func (m *mockConvertService) Today(id calendars.ID) (*TodayResponse, error) { return m.todayFn(id) }
func (m *mockConvertService) Convert(req ConvertRequest) (*ConvertResponse, error) {
	return m.convertFn(req)
}
func (m *mockConvertService) Format(req FormatRequest) (*FormatResponse, error) {
	return m.formatFn(req)
}
func (m *mockConvertService) Parse(req ParseRequest) (*ParseResponse, error) {
	return m.parseFn(req)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandlerListCalendars_Success(t *testing.T) {
	svc := &mockConvertService{
		listFn: func() []calendars.Descriptor {
			return []calendars.Descriptor{{ID: calendars.Gregorian, Name: "Gregorian"}}
		},
	}
	h := NewHandler(svc)
	c, rec := newTestContext(http.MethodGet, "/api/v1/calendars", "")

	if err := h.ListCalendars(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"total":1`) {
		t.Errorf("body %s", rec.Body.String())
	}
}

func TestHandlerGetCalendar_NotFound(t *testing.T) {
	svc := &mockConvertService{
		getFn: func(id calendars.ID) (*calendars.Descriptor, error) {
			return nil, apperror.NewNotFound("unknown calendar: " + string(id))
		},
	}
	h := NewHandler(svc)
	c, _ := newTestContext(http.MethodGet, "/api/v1/calendars/klingon", "")
	c.SetParamNames("id")
	c.SetParamValues("klingon")

	err := h.GetCalendar(c)
	if apperror.SafeCode(err) != http.StatusNotFound {
		t.Errorf("got %v, want 404", err)
	}
}

func TestHandlerConvert_PassesRequestThrough(t *testing.T) {
	var got ConvertRequest
	svc := &mockConvertService{
		convertFn: func(req ConvertRequest) (*ConvertResponse, error) {
			got = req
			return &ConvertResponse{DayCount: 2460351}, nil
		},
	}
	h := NewHandler(svc)
	body := `{"date":{"calendar":"gregorian","year":2024,"month":2,"day":10},"targets":["chinese"]}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/convert", body)

	if err := h.Convert(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status %d, want 200", rec.Code)
	}
	if got.Date.Year != 2024 || got.Date.Calendar != calendars.Gregorian {
		t.Errorf("service saw %+v", got.Date)
	}
	if len(got.Targets) != 1 || got.Targets[0] != calendars.Chinese {
		t.Errorf("service saw targets %v", got.Targets)
	}
}

func TestHandlerConvert_MalformedBody(t *testing.T) {
	h := NewHandler(&mockConvertService{})
	c, _ := newTestContext(http.MethodPost, "/api/v1/convert", `{"date":`)

	err := h.Convert(c)
	if apperror.SafeCode(err) != http.StatusBadRequest {
		t.Errorf("got %v, want 400", err)
	}
}

func TestHandlerParse_PassesTextThrough(t *testing.T) {
	svc := &mockConvertService{
		parseFn: func(req ParseRequest) (*ParseResponse, error) {
			if req.Text != "2024-02-10" {
				t.Errorf("service saw text %q", req.Text)
			}
			return &ParseResponse{Matches: []calendars.Date{}}, nil
		},
	}
	h := NewHandler(svc)
	c, rec := newTestContext(http.MethodPost, "/api/v1/parse", `{"text":"2024-02-10"}`)

	if err := h.Parse(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status %d, want 200", rec.Code)
	}
}
