package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/infra/server/router"
	"github.com/finance-ledger/backend/internal/integration/adapters"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/finance-ledger/backend/internal/integration/persistence"
	"github.com/finance-ledger/backend/test/integration/mock"
)

const snapshotKey = "finance_app_data_v2"

type testContext struct {
	server   *httptest.Server
	client   *http.Client
	engine   *ledger.Engine
	timeMock *mock.Time

	responseStatus int
	responseBody   []byte
	responseJSON   any

	// Ids captured by setup steps, substituted into request paths and bodies.
	ids map[string]string
}

// InitializeScenario wires the step definitions and rebuilds the whole server
// around a wiped store before every scenario.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.startServer()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
			test.server = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the ledger API is running$`, test.theLedgerAPIIsRunning)

	// Setup steps
	ctx.Given(`^an account named "([^"]*)" exists with balance "([^"]*)"$`, test.anAccountExistsWithBalance)
	ctx.Given(`^a card named "([^"]*)" exists with limit "([^"]*)" and cutoff day (\d+)$`, test.aCardExistsWithCutoff)
	ctx.Given(`^a card named "([^"]*)" exists with limit "([^"]*)", cutoff day (\d+) and payment day (\d+)$`, test.aCardExistsWithCutoffAndPaymentDay)
	ctx.Given(`^a budget named "([^"]*)" of type "([^"]*)" exists with amount "([^"]*)"$`, test.aBudgetExists)
	ctx.Given(`^an income of "([^"]*)" described "([^"]*)" was posted on "([^"]*)"$`, test.anIncomeWasPosted)
	ctx.Given(`^a cash expense of "([^"]*)" described "([^"]*)" was posted on "([^"]*)"$`, test.aCashExpenseWasPosted)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)

	// Store assertion steps
	ctx.Then(`^the snapshot key should be absent$`, test.theSnapshotKeyShouldBeAbsent)
}

func (t *testContext) startServer() error {
	t.ids = make(map[string]string)
	t.responseStatus = 0
	t.responseBody = nil
	t.responseJSON = nil

	client := mock.NewRedis()
	if err := mock.ClearRedis(client); err != nil {
		return err
	}

	store := persistence.NewRedisSnapshotStore(client, snapshotKey)
	t.timeMock = mock.NewTime()

	engine, err := ledger.NewEngine(context.Background(), store, adapters.NewUUIDGenerator(), t.timeMock)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	t.engine = engine

	r := router.NewRouter(
		controller.NewHealthController(func() bool {
			return client.Ping(context.Background()).Err() == nil
		}),
		controller.NewAccountController(engine),
		controller.NewCardController(engine),
		controller.NewIncomeController(engine),
		controller.NewExpenseController(engine),
		controller.NewBudgetController(engine),
		controller.NewSummaryController(engine, t.timeMock),
		controller.NewAdminController(engine),
	)

	t.server = httptest.NewServer(r.Setup("test"))
	return nil
}

func (t *testContext) theLedgerAPIIsRunning() error {
	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("expected healthy server, got status %d", resp.StatusCode)
	}
	return nil
}

// substitute replaces {name} placeholders with ids captured by setup steps.
func (t *testContext) substitute(s string) string {
	for name, id := range t.ids {
		s = strings.ReplaceAll(s, "{"+name+"}", id)
	}
	return s
}

func parseDay(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func (t *testContext) anAccountExistsWithBalance(name, balance string) error {
	amount, err := decimal.NewFromString(balance)
	if err != nil {
		return err
	}
	account, err := t.engine.CreateAccount(context.Background(), name, amount, decimal.Zero)
	if err != nil {
		return err
	}
	t.ids["account"] = account.ID
	return nil
}

func (t *testContext) aCardExistsWithCutoff(name, limit string, cutoffDay int) error {
	return t.createCard(name, limit, cutoffDay, nil)
}

func (t *testContext) aCardExistsWithCutoffAndPaymentDay(name, limit string, cutoffDay, paymentDay int) error {
	return t.createCard(name, limit, cutoffDay, &paymentDay)
}

func (t *testContext) createCard(name, limit string, cutoffDay int, paymentDay *int) error {
	creditLimit, err := decimal.NewFromString(limit)
	if err != nil {
		return err
	}
	card, err := t.engine.CreateCard(context.Background(), name, creditLimit, cutoffDay, paymentDay)
	if err != nil {
		return err
	}
	t.ids["card"] = card.ID
	return nil
}

func (t *testContext) aBudgetExists(name, budgetType, amount string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	budget, err := t.engine.CreateBudget(context.Background(), entity.BudgetType(budgetType), value, name, 1)
	if err != nil {
		return err
	}
	t.ids["budget"] = budget.ID
	return nil
}

func (t *testContext) anIncomeWasPosted(amount, description, day string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	date, err := parseDay(day)
	if err != nil {
		return err
	}
	income, err := t.engine.CreateIncome(context.Background(), t.ids["account"], value, description, date)
	if err != nil {
		return err
	}
	t.ids["income"] = income.ID
	return nil
}

func (t *testContext) aCashExpenseWasPosted(amount, description, day string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	date, err := parseDay(day)
	if err != nil {
		return err
	}
	rows, err := t.engine.CreateExpense(context.Background(), ledger.CreateExpenseInput{
		Type:        entity.ExpenseTypeCash,
		Amount:      value,
		Description: description,
		Date:        date,
	})
	if err != nil {
		return err
	}
	t.ids["expense"] = rows[0].ID
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.sendRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	payload := []byte(t.substitute(body.Content))
	return t.sendRequest(method, path, payload)
}

func (t *testContext) sendRequest(method, path string, payload []byte) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+t.substitute(path), reader)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	t.responseStatus = resp.StatusCode
	t.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.responseJSON = nil
	if len(t.responseBody) > 0 {
		_ = json.Unmarshal(t.responseBody, &t.responseJSON)
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(status int) error {
	if t.responseStatus != status {
		return fmt.Errorf("expected status %d, got %d (body: %s)", status, t.responseStatus, t.responseBody)
	}
	return nil
}

// resolvePath walks a dot-separated path through the decoded JSON, with
// numeric segments indexing into arrays.
func (t *testContext) resolvePath(path string) (any, error) {
	current := t.responseJSON
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field %q not found in %s", segment, t.responseBody)
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil {
				return nil, fmt.Errorf("expected numeric index at %q", segment)
			}
			if index < 0 || index >= len(node) {
				return nil, fmt.Errorf("index %d out of range (len %d)", index, len(node))
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into %q at segment %q", t.responseBody, segment)
		}
	}
	return current, nil
}

func (t *testContext) theResponseFieldShouldBe(path, expected string) error {
	value, err := t.resolvePath(path)
	if err != nil {
		return err
	}
	got := fmt.Sprintf("%v", value)
	if got != t.substitute(expected) {
		return fmt.Errorf("expected field %q to be %q, got %q", path, expected, got)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(path string) error {
	_, err := t.resolvePath(path)
	return err
}

func (t *testContext) theResponseShouldContain(substring string) error {
	if !strings.Contains(string(t.responseBody), t.substitute(substring)) {
		return fmt.Errorf("expected body to contain %q, got %s", substring, t.responseBody)
	}
	return nil
}

func (t *testContext) theResponseListShouldHaveItems(path string, count int) error {
	value, err := t.resolvePath(path)
	if err != nil {
		return err
	}
	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected field %q to be a list, got %T", path, value)
	}
	if len(list) != count {
		return fmt.Errorf("expected %d items in %q, got %d", count, path, len(list))
	}
	return nil
}

func (t *testContext) theSnapshotKeyShouldBeAbsent() error {
	exists, err := mock.NewRedis().Exists(context.Background(), snapshotKey).Result()
	if err != nil {
		return err
	}
	if exists != 0 {
		return fmt.Errorf("expected snapshot key to be gone")
	}
	return nil
}
