package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/roommates/internal/events"
	"github.com/mmynk/roommates/internal/household"
	"github.com/mmynk/roommates/internal/ledger"
	"github.com/mmynk/roommates/internal/metrics"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/internal/storage"
	"github.com/mmynk/roommates/pkg/api"
)

// LedgerService implements api.LedgerServiceHandler.
type LedgerService struct {
	store     storage.Store
	publisher events.Publisher
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewLedgerService creates a LedgerService.
func NewLedgerService(store storage.Store, publisher events.Publisher, m *metrics.Metrics, now func() time.Time) *LedgerService {
	return &LedgerService{store: store, publisher: publisher, metrics: m, now: now}
}

// inRoom runs fn in a transaction with the caller's room.
func (s *LedgerService) inRoom(ctx context.Context, personID int64, fn func(tx storage.Tx, room *models.Room) error) error {
	return s.store.InTx(ctx, func(tx storage.Tx) error {
		_, room, err := household.RoomOf(ctx, tx, personID)
		if err != nil {
			return err
		}
		return fn(tx, room)
	})
}

// resolvePeriod loads a period of the room. Zero selects the open period.
func resolvePeriod(ctx context.Context, tx storage.Tx, roomID, periodID int64) (*models.ExpensePeriod, error) {
	if periodID == 0 {
		return ledger.CurrentPeriod(ctx, tx, roomID)
	}
	period, err := tx.GetExpensePeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	if period.RoomID != roomID {
		return nil, fmt.Errorf("expense period %d: %w", periodID, models.ErrNotFound)
	}
	return period, nil
}

// OpenPeriod starts the room's first period.
func (s *LedgerService) OpenPeriod(ctx context.Context, req *connect.Request[api.OpenPeriodRequest]) (*connect.Response[api.PeriodResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("OpenPeriod request received", "person_id", personID)

	var period *models.ExpensePeriod
	err = s.inRoom(ctx, personID, func(tx storage.Tx, room *models.Room) error {
		var err error
		period, err = ledger.OpenPeriod(ctx, tx, room.ID, s.now())
		return err
	})
	if err != nil {
		return nil, toConnectError(ctx, "OpenPeriod", err)
	}

	slog.Info("Expense period opened", "period_id", period.ID, "room_id", period.RoomID)
	return connect.NewResponse(&api.PeriodResponse{Period: toAPIPeriod(period)}), nil
}

// ClosePeriod closes the open period and opens its successor.
func (s *LedgerService) ClosePeriod(ctx context.Context, req *connect.Request[api.ClosePeriodRequest]) (*connect.Response[api.ClosePeriodResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("ClosePeriod request received", "person_id", personID)

	var closed, successor *models.ExpensePeriod
	err = s.inRoom(ctx, personID, func(tx storage.Tx, room *models.Room) error {
		var err error
		closed, successor, err = ledger.ClosePeriod(ctx, tx, room.ID, s.now())
		return err
	})
	if err != nil {
		return nil, toConnectError(ctx, "ClosePeriod", err)
	}

	slog.Info("Expense period closed", "period_id", closed.ID, "successor_id", successor.ID, "room_id", closed.RoomID)
	s.metrics.PeriodClosed()
	resp := &api.ClosePeriodResponse{Closed: toAPIPeriod(closed), Current: toAPIPeriod(successor)}
	events.Emit(ctx, s.publisher, events.PeriodClosed, closed.RoomID, personID, resp)

	return connect.NewResponse(resp), nil
}

// ListPeriods returns every period of the caller's room.
func (s *LedgerService) ListPeriods(ctx context.Context, req *connect.Request[api.ListPeriodsRequest]) (*connect.Response[api.ListPeriodsResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var periods []*models.ExpensePeriod
	err = s.inRoom(ctx, personID, func(tx storage.Tx, room *models.Room) error {
		var err error
		periods, err = ledger.ListPeriods(ctx, tx, room.ID)
		return err
	})
	if err != nil {
		return nil, toConnectError(ctx, "ListPeriods", err)
	}

	out := make([]*api.ExpensePeriod, 0, len(periods))
	for _, p := range periods {
		out = append(out, toAPIPeriod(p))
	}
	return connect.NewResponse(&api.ListPeriodsResponse{Periods: out}), nil
}

// AddExpense records a payment by the caller in the open period.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.ExpenseResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("AddExpense request received",
		"person_id", personID,
		"title", req.Msg.Title,
		"cost", req.Msg.Cost,
		"splits_count", len(req.Msg.Splits),
		"split_evenly", req.Msg.SplitEvenly,
	)

	splits := make([]ledger.SplitInput, 0, len(req.Msg.Splits))
	for _, sp := range req.Msg.Splits {
		if sp == nil {
			continue
		}
		splits = append(splits, ledger.SplitInput{
			Username:   sp.Username,
			PersonID:   sp.PersonID,
			Percentage: sp.Percentage,
		})
	}

	var detail *ledger.ExpenseDetail
	err = s.inRoom(ctx, personID, func(tx storage.Tx, room *models.Room) error {
		var err error
		detail, err = ledger.AddExpense(ctx, tx, ledger.NewExpense{
			RoomID:      room.ID,
			PayerID:     personID,
			Title:       req.Msg.Title,
			Cost:        req.Msg.Cost,
			Description: req.Msg.Description,
			Splits:      splits,
			SplitEvenly: req.Msg.SplitEvenly,
		}, s.now())
		return err
	})
	if err != nil {
		return nil, toConnectError(ctx, "AddExpense", err)
	}

	slog.Info("Expense recorded", "expense_id", detail.Expense.ID, "period_id", detail.Expense.PeriodID)
	s.metrics.ExpenseRecorded()
	return connect.NewResponse(&api.ExpenseResponse{Expense: toAPIExpense(detail)}), nil
}

// RemoveExpense deletes an expense of the caller's room.
func (s *LedgerService) RemoveExpense(ctx context.Context, req *connect.Request[api.RemoveExpenseRequest]) (*connect.Response[api.Empty], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("RemoveExpense request received", "person_id", personID, "expense_id", req.Msg.ExpenseID)

	err = s.inRoom(ctx, personID, func(tx storage.Tx, room *models.Room) error {
		expense, err := tx.GetExpense(ctx, req.Msg.ExpenseID)
		if err != nil {
			return err
		}
		if expense.RoomID != room.ID {
			return fmt.Errorf("expense %d: %w", expense.ID, models.ErrNotFound)
		}
		return ledger.RemoveExpense(ctx, tx, expense.ID)
	})
	if err != nil {
		return nil, toConnectError(ctx, "RemoveExpense", err)
	}
	return connect.NewResponse(&api.Empty{}), nil
}

// ListExpenses returns the expenses of one period with their splits.
func (s *LedgerService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var details []*ledger.ExpenseDetail
	err = s.inRoom(ctx, personID, func(tx storage.Tx, room *models.Room) error {
		period, err := resolvePeriod(ctx, tx, room.ID, req.Msg.PeriodID)
		if err != nil {
			return err
		}
		details, err = ledger.ListExpenses(ctx, tx, period.ID)
		return err
	})
	if err != nil {
		return nil, toConnectError(ctx, "ListExpenses", err)
	}

	out := make([]*api.Expense, 0, len(details))
	for _, d := range details {
		out = append(out, toAPIExpense(d))
	}
	slog.Info("ListExpenses successful", "person_id", personID, "count", len(out))
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// GetBalances returns who owes whom within one period.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var balances *ledger.PeriodBalances
	err = s.inRoom(ctx, personID, func(tx storage.Tx, room *models.Room) error {
		period, err := resolvePeriod(ctx, tx, room.ID, req.Msg.PeriodID)
		if err != nil {
			return err
		}
		balances, err = ledger.Balances(ctx, tx, period.ID)
		return err
	})
	if err != nil {
		return nil, toConnectError(ctx, "GetBalances", err)
	}

	return connect.NewResponse(&api.GetBalancesResponse{
		Period:   toAPIPeriod(balances.Period),
		Balances: toAPIBalances(balances.Members),
		Debts:    toAPIDebts(balances.Debts),
	}), nil
}

// ListShares returns every expense share the caller owes.
func (s *LedgerService) ListShares(ctx context.Context, req *connect.Request[api.ListSharesRequest]) (*connect.Response[api.ListSharesResponse], error) {
	personID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	var splits []*models.ExpenseSplit
	err = s.store.InTx(ctx, func(tx storage.Tx) error {
		var err error
		splits, err = ledger.ListShares(ctx, tx, personID)
		return err
	})
	if err != nil {
		return nil, toConnectError(ctx, "ListShares", err)
	}

	out := make([]*api.Share, 0, len(splits))
	for _, sp := range splits {
		out = append(out, &api.Share{ExpenseID: sp.ExpenseID, Percentage: sp.Percentage})
	}
	return connect.NewResponse(&api.ListSharesResponse{Shares: out}), nil
}
