package usecase

import (
	"context"

	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/errs"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/session"
)

// DashboardView is the gateway aggregate plus the one ratio derived locally.
type DashboardView struct {
	gateway.DashboardDTO
	OccupancyRate float64
}

type DashboardQueries interface {
	Dashboard(ctx context.Context, sess *session.Session) (*DashboardView, error)
}

type dashboardQueriesImpl struct {
	users UserGateway
}

func NewDashboardQueries(users UserGateway) DashboardQueries {
	return &dashboardQueriesImpl{users: users}
}

// Dashboard renders precomputed statistics. The gateway enforces the admin
// role; the session check here only short-circuits the obvious case.
func (d *dashboardQueriesImpl) Dashboard(ctx context.Context, sess *session.Session) (*DashboardView, error) {
	if !sess.IsAuthenticated() {
		return nil, errs.ErrAuthRequired
	}

	dto, err := d.users.Dashboard(ctx, sess.Token())
	if err != nil {
		return nil, err
	}

	view := &DashboardView{DashboardDTO: *dto}
	if dto.TotalRooms > 0 {
		view.OccupancyRate = float64(dto.BookedRooms) / float64(dto.TotalRooms)
	}
	return view, nil
}
