package service

import (
	"time"

	"github.com/mmynk/roommates/internal/calculator"
	"github.com/mmynk/roommates/internal/ledger"
	"github.com/mmynk/roommates/internal/models"
	"github.com/mmynk/roommates/pkg/api"
)

func toAPIPerson(p *models.Person) *api.Person {
	out := &api.Person{
		ID:        p.ID,
		Name:      p.Name,
		Username:  p.Username,
		CreatedAt: p.CreatedAt,
	}
	if p.RoomID != nil {
		out.RoomID = *p.RoomID
	}
	return out
}

func toAPIRoom(room *models.Room, members []*models.Person) *api.Room {
	out := &api.Room{
		ID:         room.ID,
		Name:       room.Name,
		InviteCode: room.InviteCode,
		CreatedAt:  room.CreatedAt,
	}
	for _, m := range members {
		out.Members = append(out.Members, toAPIPerson(m))
	}
	return out
}

func toAPIChore(c *models.Chore) *api.Chore {
	return &api.Chore{
		ID:            c.ID,
		Description:   c.Description,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		IsTask:        c.IsTask,
		Completed:     c.Completed,
		Recurrence:    string(c.Recurrence),
		AssigneeID:    c.AssigneeID,
		AssignorID:    c.AssignorID,
		RotationOrder: c.RotationOrder,
	}
}

func toAPIPeriod(p *models.ExpensePeriod) *api.ExpensePeriod {
	if p == nil {
		return nil
	}
	out := &api.ExpensePeriod{
		ID:        p.ID,
		RoomID:    p.RoomID,
		StartDate: p.StartDate,
		Open:      p.Open,
	}
	if p.EndDate != nil {
		end := *p.EndDate
		out.EndDate = &end
	}
	return out
}

func toAPIExpense(d *ledger.ExpenseDetail) *api.Expense {
	e := d.Expense
	out := &api.Expense{
		ID:          e.ID,
		PeriodID:    e.PeriodID,
		PayerID:     e.PayerID,
		Title:       e.Title,
		Cost:        e.Cost,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		Splits:      make([]*api.Split, 0, len(d.Splits)),
	}
	for _, s := range d.Splits {
		out.Splits = append(out.Splits, &api.Split{
			PersonID:   s.PersonID,
			Percentage: s.Percentage,
			Amount:     calculator.ShareAmount(e.Cost, s.Percentage),
		})
	}
	return out
}

func toAPIBalances(members []calculator.MemberBalance) []*api.Balance {
	out := make([]*api.Balance, 0, len(members))
	for _, m := range members {
		out = append(out, &api.Balance{
			PersonID:   m.PersonID,
			TotalPaid:  m.TotalPaid,
			TotalOwed:  m.TotalOwed,
			NetBalance: m.NetBalance,
		})
	}
	return out
}

func toAPIDebts(debts []calculator.DebtEdge) []*api.Debt {
	out := make([]*api.Debt, 0, len(debts))
	for _, d := range debts {
		out = append(out, &api.Debt{From: d.From, To: d.To, Amount: d.Amount})
	}
	return out
}

func toAPINotification(n *models.Notification) *api.Notification {
	return &api.Notification{
		ID:          n.ID,
		SenderID:    n.SenderID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Description: n.Description,
		Time:        n.Time.In(time.UTC),
		IsRead:      n.IsRead,
	}
}
