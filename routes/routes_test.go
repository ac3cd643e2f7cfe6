package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/azadgupta1010/GD-2.0/config"
	"github.com/azadgupta1010/GD-2.0/controllers"
	"github.com/azadgupta1010/GD-2.0/models"
	"github.com/azadgupta1010/GD-2.0/service"
	"github.com/azadgupta1010/GD-2.0/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var testSecret = []byte("test-secret")

type testAPI struct {
	t       *testing.T
	r       *gin.Engine
	db      *gorm.DB
	company uuid.UUID
	godown  uuid.UUID
	owner   string
	manager string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := config.ConnectDB(config.DatabaseConfig{
		Driver:   "sqlite",
		Path:     filepath.Join(t.TempDir(), "api.db"),
		LogLevel: "silent",
	}, log)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	svc := service.NewService(db, log)
	h := controllers.NewHandler(svc, log, testSecret, time.Hour)
	r := gin.New()
	SetupRoutes(r, h, testSecret)

	a := &testAPI{t: t, r: r, db: db, company: uuid.New(), godown: uuid.New()}
	a.owner = a.token(models.RoleOwner)
	a.manager = a.token(models.RoleManager)
	return a
}

func (a *testAPI) token(role models.Role) string {
	a.t.Helper()
	return a.tokenFor(a.company, role)
}

func (a *testAPI) tokenFor(company uuid.UUID, role models.Role) string {
	a.t.Helper()
	tok, err := utils.GenerateToken(testSecret, utils.Claims{
		UserID:    uuid.NewString(),
		Username:  string(role),
		Role:      string(role),
		CompanyID: company.String(),
	}, time.Hour)
	if err != nil {
		a.t.Fatalf("token: %v", err)
	}
	return tok
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			a.t.Fatalf("marshal: %v", err)
		}
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func (a *testAPI) createAccount(opening string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/accounts", a.owner, map[string]any{
		"company_id":      a.company,
		"godown_id":       a.godown,
		"name":            "Cash Box",
		"type":            "cash",
		"opening_balance": opening,
	})
	if w.Code != http.StatusCreated {
		a.t.Fatalf("create account = %d %s", w.Code, w.Body.String())
	}
	acc := decode(a.t, w)["account"].(map[string]any)
	return acc["id"].(string)
}

func TestRoutesRequireToken(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(http.MethodGet, "/api/kabadiwala/list/"+a.company.String(), "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token = %d, want 401", w.Code)
	}
	w = a.do(http.MethodGet, "/api/kabadiwala/list/"+a.company.String(), "garbage", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad token = %d, want 401", w.Code)
	}
}

func TestLogin(t *testing.T) {
	a := newTestAPI(t)
	if _, err := config.SeedOwner(a.db, config.BootstrapConfig{
		OwnerUsername: "owner",
		OwnerPassword: "owner-pass",
		CompanyID:     a.company.String(),
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "owner", "password": "owner-pass"})
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d %s", w.Code, w.Body.String())
	}
	tok, _ := decode(t, w)["token"].(string)
	claims, err := utils.VerifyToken(testSecret, tok)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Role != string(models.RoleOwner) || claims.CompanyID != a.company.String() {
		t.Errorf("claims = %+v", claims)
	}

	w = a.do(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "owner", "password": "nope"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password = %d, want 401", w.Code)
	}

	w = a.do(http.MethodPost, "/api/auth/users", tok, map[string]string{"username": "m1", "password": "secret1"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create user = %d %s", w.Code, w.Body.String())
	}
	w = a.do(http.MethodPost, "/api/auth/users", a.manager, map[string]string{"username": "m2", "password": "secret1"})
	if w.Code != http.StatusForbidden {
		t.Errorf("manager creating user = %d, want 403", w.Code)
	}
}

func TestKabadiwalaPurchaseFlow(t *testing.T) {
	a := newTestAPI(t)
	accountID := a.createAccount("5000")

	w := a.do(http.MethodPost, "/api/kabadiwala/add", a.manager, map[string]any{
		"company_id":      a.company,
		"godown_id":       a.godown,
		"kabadiwala_name": "Ramesh",
		"account_id":      accountID,
		"scraps": []map[string]any{
			{"material": "iron", "weight": 100, "rate": 2, "amount": 200},
			{"material": "copper", "weight": "2", "rate": "500", "amount": "1000"},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add = %d %s", w.Code, w.Body.String())
	}
	if id, _ := decode(t, w)["kabadiwala_id"].(string); id == "" {
		t.Errorf("missing kabadiwala_id in %s", w.Body.String())
	}

	w = a.do(http.MethodGet, "/api/kabadiwala/list/"+a.company.String(), a.manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d %s", w.Code, w.Body.String())
	}
	data := decode(t, w)["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("records = %d, want 1", len(data))
	}
	rec := data[0].(map[string]any)
	if rec["total_amount"] != "1200" || len(rec["scraps"].([]any)) != 2 {
		t.Errorf("record = %v", rec)
	}

	w = a.do(http.MethodGet, "/api/accounts?company_id="+a.company.String(), a.manager, nil)
	accounts := decode(t, w)["accounts"].([]any)
	if bal := accounts[0].(map[string]any)["balance"]; bal != "3800" {
		t.Errorf("balance = %v, want 3800", bal)
	}

	w = a.do(http.MethodGet, "/api/accounts/"+accountID+"/transactions", a.manager, nil)
	txs := decode(t, w)["transactions"].([]any)
	if len(txs) != 2 {
		t.Fatalf("transactions = %d, want 2", len(txs))
	}
	if cat := txs[0].(map[string]any)["category"]; cat != models.CategoryKabadiwalaPurchase {
		t.Errorf("latest category = %v", cat)
	}
}

func TestPurchaseRejectsBadInput(t *testing.T) {
	a := newTestAPI(t)
	accountID := a.createAccount("100")

	w := a.do(http.MethodPost, "/api/feriwala/add", a.manager, map[string]any{
		"company_id": a.company,
		"godown_id":  a.godown,
		"account_id": accountID,
		"scraps":     []map[string]any{{"material": "iron", "amount": 10}},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name = %d, want 400", w.Code)
	}
	if msg := decode(t, w)["error"]; msg != "Missing required fields" {
		t.Errorf("error = %v", msg)
	}

	w = a.do(http.MethodPost, "/api/feriwala/add", a.manager,
		`{"company_id":"`+a.company.String()+`","godown_id":"`+a.godown.String()+`","feriwala_name":"A","account_id":"`+accountID+
			`","scraps":[{"material":"iron","weight":"abc","amount":10}]}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed weight = %d, want 400", w.Code)
	}

	w = a.do(http.MethodPost, "/api/maalOut/add", a.manager, map[string]any{
		"company_id": a.company,
		"godown_id":  a.godown,
		"buyer":      "Steel Traders",
		"items":      []map[string]any{{"material": "iron", "amount": 10}},
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("sale without account = %d, want 400", w.Code)
	}

	w = a.do(http.MethodPost, "/api/maalOut/add", a.manager, map[string]any{
		"company_id": a.company,
		"godown_id":  a.godown,
		"buyer":      "Steel Traders",
		"account_id": uuid.New(),
		"items":      []map[string]any{{"material": "iron", "amount": 10}},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("sale to unknown account = %d, want 404", w.Code)
	}
}

func TestMaalInLifecycle(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(http.MethodPost, "/api/maalin", a.manager, map[string]any{
		"company_id":    a.company,
		"godown_id":     a.godown,
		"date":          "2026-03-01",
		"supplier_name": "Gupta Metals",
		"meta":          map[string]any{"vehicle": "UP32 1234"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d %s", w.Code, w.Body.String())
	}
	id := decode(t, w)["maal_in"].(map[string]any)["id"].(string)

	w = a.do(http.MethodPost, "/api/maalin/"+id+"/items", a.manager, map[string]any{
		"items": []map[string]any{{"material": "iron", "weight": 500, "rate": 2, "amount": 1000}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("items = %d %s", w.Code, w.Body.String())
	}

	w = a.do(http.MethodPost, "/api/maalin/"+id+"/pay", a.manager, map[string]any{"amount": 400, "date": "2026-03-02"})
	if w.Code != http.StatusCreated {
		t.Fatalf("pay = %d %s", w.Code, w.Body.String())
	}
	if st := decode(t, w)["payment_status"]; st != string(models.PaymentPartiallyPaid) {
		t.Errorf("payment_status = %v", st)
	}

	w = a.do(http.MethodPost, "/api/maalin/"+id+"/pay", a.manager, map[string]any{"amount": 400, "date": "02/03/2026"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date = %d, want 400", w.Code)
	}

	w = a.do(http.MethodPost, "/api/maalin/"+id+"/approve", a.manager, map[string]any{"action": "approve"})
	if w.Code != http.StatusForbidden {
		t.Errorf("manager approve = %d, want 403", w.Code)
	}
	w = a.do(http.MethodPost, "/api/maalin/"+id+"/approve", a.owner, map[string]any{"action": "approve"})
	if w.Code != http.StatusOK {
		t.Fatalf("approve = %d %s", w.Code, w.Body.String())
	}
	m := decode(t, w)["maal_in"].(map[string]any)
	if m["status"] != "approved" || m["approved_at"] == nil || m["approved_by"] != "owner" {
		t.Errorf("approved bill = %v", m)
	}
	w = a.do(http.MethodPost, "/api/maalin/"+id+"/approve", a.owner, map[string]any{"action": "reject"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("second transition = %d, want 400", w.Code)
	}

	q := "?company_id=" + a.company.String() + "&godown_id=" + a.godown.String()
	w = a.do(http.MethodGet, "/api/maalin/range"+q, a.manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("range = %d %s", w.Code, w.Body.String())
	}
	rows := decode(t, w)["data"].([]any)
	if len(rows) != 1 || rows[0].(map[string]any)["item_count"] != float64(1) {
		t.Errorf("range rows = %v", rows)
	}

	w = a.do(http.MethodGet, "/api/maalin/list"+q+"&status=approved", a.manager, nil)
	if len(decode(t, w)["data"].([]any)) != 1 {
		t.Errorf("approved list = %s", w.Body.String())
	}

	w = a.do(http.MethodGet, "/api/maalin/"+id, a.manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d", w.Code)
	}
	got := decode(t, w)["maal_in"].(map[string]any)
	if len(got["items"].([]any)) != 1 || len(got["payments"].([]any)) != 1 {
		t.Errorf("bill children = %v", got)
	}

	w = a.do(http.MethodDelete, "/api/maalin/"+id, a.manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete = %d %s", w.Code, w.Body.String())
	}
	w = a.do(http.MethodGet, "/api/maalin/"+id, a.manager, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("get deleted = %d, want 404", w.Code)
	}
	w = a.do(http.MethodGet, "/api/maalin/not-a-uuid", a.manager, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("malformed id = %d, want 400", w.Code)
	}
}

func TestLabourAttendance(t *testing.T) {
	a := newTestAPI(t)

	body := map[string]any{
		"company_id": a.company,
		"godown_id":  a.godown,
		"name":       "Mohan",
		"daily_wage": 500,
	}
	if w := a.do(http.MethodPost, "/api/labour/add", a.manager, body); w.Code != http.StatusForbidden {
		t.Errorf("manager add labour = %d, want 403", w.Code)
	}
	w := a.do(http.MethodPost, "/api/labour/add", a.owner, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("add labour = %d %s", w.Code, w.Body.String())
	}
	labourID := decode(t, w)["labour"].(map[string]any)["id"].(string)

	mark := map[string]any{"labour_id": labourID, "date": "2026-03-10", "status": "present"}
	if w := a.do(http.MethodPost, "/api/labour/attendance/mark", a.manager, mark); w.Code != http.StatusOK {
		t.Fatalf("mark = %d %s", w.Code, w.Body.String())
	}
	w = a.do(http.MethodPost, "/api/labour/attendance/mark", a.manager, mark)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate mark = %d, want 400", w.Code)
	}
	if msg := decode(t, w)["error"]; msg != service.ErrDuplicateAttendance.Error() {
		t.Errorf("duplicate error = %v", msg)
	}

	w = a.do(http.MethodPost, "/api/labour/attendance/mark", a.manager,
		map[string]any{"labour_id": uuid.New(), "date": "2026-03-10", "status": "present"})
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown labour = %d, want 404", w.Code)
	}

	w = a.do(http.MethodPost, "/api/labour/payment", a.manager,
		map[string]any{"labour_id": labourID, "amount": 200, "date": "2026-03-11"})
	if w.Code != http.StatusOK {
		t.Fatalf("payment = %d %s", w.Code, w.Body.String())
	}

	w = a.do(http.MethodGet, "/api/labour/all?company_id="+a.company.String()+"&godown_id="+a.godown.String(), a.manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list = %d", w.Code)
	}
	rows := decode(t, w)["labour"].([]any)
	if len(rows) != 1 {
		t.Fatalf("labour rows = %d", len(rows))
	}
	l := rows[0].(map[string]any)
	if l["total_salary_earned"] != "500" || l["total_withdrawn"] != "200" {
		t.Errorf("totals = %v / %v", l["total_salary_earned"], l["total_withdrawn"])
	}
}

func TestAccountExport(t *testing.T) {
	a := newTestAPI(t)
	accountID := a.createAccount("750")

	w := a.do(http.MethodGet, "/api/accounts/"+accountID+"/transactions/export", a.owner, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export = %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("content type = %q", ct)
	}

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Ledger")
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 4 || rows[3][2] != models.CategoryOpeningBalance {
		t.Errorf("sheet rows = %v", rows)
	}

	w = a.do(http.MethodGet, "/api/accounts/"+uuid.NewString()+"/transactions/export", a.owner, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown account export = %d, want 404", w.Code)
	}
}

func TestOtherCompanyTokenIsFencedOff(t *testing.T) {
	a := newTestAPI(t)
	accountID := a.createAccount("500")

	w := a.do(http.MethodPost, "/api/maalin", a.manager, map[string]any{
		"company_id": a.company,
		"godown_id":  a.godown,
		"date":       "2026-03-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d %s", w.Code, w.Body.String())
	}
	billID := decode(t, w)["maal_in"].(map[string]any)["id"].(string)

	outsider := a.tokenFor(uuid.New(), models.RoleOwner)
	q := "?company_id=" + a.company.String() + "&godown_id=" + a.godown.String()
	items := []map[string]any{{"material": "iron", "weight": 1, "rate": 1, "amount": 1}}

	forbidden := []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/kabadiwala/list/" + a.company.String(), nil},
		{http.MethodGet, "/api/maalOut/list/" + a.company.String(), nil},
		{http.MethodGet, "/api/feriwala/list" + q, nil},
		{http.MethodGet, "/api/maalin/list" + q, nil},
		{http.MethodGet, "/api/maalin/range" + q, nil},
		{http.MethodGet, "/api/labour/all" + q, nil},
		{http.MethodGet, "/api/accounts?company_id=" + a.company.String(), nil},
		{http.MethodPost, "/api/maalOut/add", map[string]any{
			"company_id": a.company, "godown_id": a.godown, "buyer": "X", "items": items, "account_id": accountID,
		}},
		{http.MethodPost, "/api/kabadiwala/add", map[string]any{
			"company_id": a.company, "godown_id": a.godown, "kabadiwala_name": "X", "scraps": items, "account_id": accountID,
		}},
		{http.MethodPost, "/api/maalin", map[string]any{"company_id": a.company, "godown_id": a.godown, "date": "2026-03-01"}},
	}
	for _, tc := range forbidden {
		if w := a.do(tc.method, tc.path, outsider, tc.body); w.Code != http.StatusForbidden {
			t.Errorf("%s %s = %d %s, want 403", tc.method, tc.path, w.Code, w.Body.String())
		}
	}

	missing := []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/accounts/" + accountID + "/transactions", nil},
		{http.MethodGet, "/api/accounts/" + accountID + "/transactions/export", nil},
		{http.MethodGet, "/api/maalin/" + billID, nil},
		{http.MethodPost, "/api/maalin/" + billID + "/items", map[string]any{"items": items}},
		{http.MethodPost, "/api/maalin/" + billID + "/pay", map[string]any{"amount": 1, "date": "2026-03-02"}},
		{http.MethodPost, "/api/maalin/" + billID + "/approve", map[string]any{"action": "approve"}},
		{http.MethodDelete, "/api/maalin/" + billID, nil},
	}
	for _, tc := range missing {
		if w := a.do(tc.method, tc.path, outsider, tc.body); w.Code != http.StatusNotFound {
			t.Errorf("%s %s = %d %s, want 404", tc.method, tc.path, w.Code, w.Body.String())
		}
	}

	w = a.do(http.MethodGet, "/api/maalin/"+billID, a.manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("owner company get = %d", w.Code)
	}
	if st := decode(t, w)["maal_in"].(map[string]any)["status"]; st != "submitted" {
		t.Errorf("status after foreign calls = %v", st)
	}
}

func TestEmptyBillListsNoChildren(t *testing.T) {
	a := newTestAPI(t)

	w := a.do(http.MethodPost, "/api/maalin", a.manager, map[string]any{
		"company_id": a.company,
		"godown_id":  a.godown,
		"date":       "2026-03-01",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create = %d %s", w.Code, w.Body.String())
	}
	created := decode(t, w)["maal_in"].(map[string]any)
	if !strings.Contains(w.Body.String(), `"items":[]`) || !strings.Contains(w.Body.String(), `"payments":[]`) {
		t.Errorf("create body = %s, want empty items and payments", w.Body.String())
	}

	w = a.do(http.MethodGet, "/api/maalin/"+created["id"].(string), a.manager, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get = %d", w.Code)
	}
	got := decode(t, w)["maal_in"].(map[string]any)
	if items, ok := got["items"].([]any); !ok || len(items) != 0 {
		t.Errorf("items = %#v, want []", got["items"])
	}
	if pays, ok := got["payments"].([]any); !ok || len(pays) != 0 {
		t.Errorf("payments = %#v, want []", got["payments"])
	}
}
