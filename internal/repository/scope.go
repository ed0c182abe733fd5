package repository

import (
	"yourfuture/internal/model"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// scopeColumns names the columns a ListScope is evaluated against.
type scopeColumns struct {
	creator  string
	status   string
	approved exp.Expression
	// notHeld is nil for kinds without a hold flag
	notHeld exp.Expression
}

// scopeWhere translates scope into WHERE conditions.
func scopeWhere(scope model.ListScope, cols scopeColumns) []exp.Expression {
	var where []exp.Expression

	switch {
	case scope.CreatorID != 0:
		where = append(where, goqu.I(cols.creator).Eq(scope.CreatorID))
	case scope.AllStatuses:
	case scope.ViewerID != 0:
		where = append(where, goqu.Or(
			cols.approved,
			goqu.And(
				goqu.I(cols.creator).Eq(scope.ViewerID),
				goqu.I(cols.status).In(string(model.StatusPending), string(model.StatusRejected)),
			),
		))
	default:
		where = append(where, cols.approved)
	}

	if scope.ExcludeHeld && cols.notHeld != nil {
		where = append(where, cols.notHeld)
	}

	return where
}
