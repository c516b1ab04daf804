package controller

import (
	"context"

	"github.com/healteex/trackctl/internal/apperr"
	domainauth "github.com/healteex/trackctl/internal/domain/auth"
	"github.com/healteex/trackctl/internal/domain/model"
	"github.com/healteex/trackctl/internal/service"
	"github.com/healteex/trackctl/internal/session"
)

// DashboardController owns the aggregate dashboard view: it triggers fetches
// once a session exists, rebuilds the lookup index on every refresh, and
// discards the data when the session is cleared.
type DashboardController struct {
	sessions  *session.Store
	dashboard *service.DashboardService

	data  *model.Dashboard
	index *model.Index
	state ScreenState
}

// NewDashboardController constructs a DashboardController and subscribes to
// session changes so dashboard data never outlives the session it belongs to.
func NewDashboardController(sessions *session.Store, dashboard *service.DashboardService) *DashboardController {
	c := &DashboardController{
		sessions:  sessions,
		dashboard: dashboard,
		state:     ScreenState{Phase: PhaseIdle},
	}
	sessions.Subscribe(func(sess domainauth.Session) {
		if !sess.IsAuthenticated() {
			c.data = nil
			c.index = nil
		}
	})
	return c
}

// State returns the screen's lifecycle state.
func (c *DashboardController) State() ScreenState {
	return c.state
}

// Data returns the latest aggregate, nil before the first successful fetch or
// after the session was cleared.
func (c *DashboardController) Data() *model.Dashboard {
	return c.data
}

// Index returns the id lookup maps for the latest aggregate, nil alongside
// Data.
func (c *DashboardController) Index() *model.Index {
	return c.index
}

// Summary computes headline figures for the latest aggregate.
func (c *DashboardController) Summary() model.Summary {
	if c.data == nil {
		return model.Summary{}
	}
	return c.data.Summarize()
}

// Refresh re-runs the aggregate fetch with the current access token. An
// unauthorized response clears the session, which in turn discards the data;
// any other failure keeps the previous aggregate and surfaces the message.
func (c *DashboardController) Refresh(ctx context.Context) error {
	c.state = ScreenState{Phase: PhaseSubmitting}

	data, err := c.dashboard.Fetch(ctx, c.sessions.AccessToken())
	if err != nil {
		c.state = ScreenState{Phase: PhaseIdle, Status: apperr.Message(err, "Unable to fetch data")}
		if apperr.IsUnauthorized(err) {
			c.sessions.SignOut(ctx)
		}
		return err
	}

	c.data = data
	c.index = data.BuildIndex()
	c.state = ScreenState{Phase: PhaseIdle}
	return nil
}
