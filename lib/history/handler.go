package historyhandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"office-workflow-backend/db"
	historystore "office-workflow-backend/lib/history/store"
	"office-workflow-backend/models"
	historyapimodels "office-workflow-backend/models/api/history"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Audit(requestID, action, actorName, details string)
	Feed(viewer models.Viewer) ([]historyapimodels.HistoryFeedView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: historystore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: historystore.NewInstance(tx),
	}
}

type impl struct {
	store historystore.Provider
}

// Audit appends a timeline entry to a request. The log is append-only;
// a failed insert is reported but never fails the operation being logged.
func (i impl) Audit(requestID, action, actorName, details string) {
	rec := dbmodels.RequestHistory{
		RequestID: requestID,
		Action:    action,
		ActorName: actorName,
		Details:   details,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("request_id", requestID).
			WithField("action", action).
			WithError(err).
			Error("failed to append request history")
	}
}

// Feed returns the aggregated timeline across every request the viewer
// may see, newest first.
func (i impl) Feed(viewer models.Viewer) ([]historyapimodels.HistoryFeedView, error) {
	scope := historystore.FeedScope{}
	switch {
	case viewer.Role.IsMaster():
	case viewer.Role.IsTeam():
		scope.TeamRole = viewer.Role
	default:
		// Same rule as the request list: no employee id, no feed. The
		// empty scope must stay reserved for the Master.
		if viewer.EmployeeID == "" {
			return []historyapimodels.HistoryFeedView{}, nil
		}
		scope.EmployeeID = viewer.EmployeeID
	}
	recList, err := i.store.Feed(scope)
	if err != nil {
		return nil, err
	}
	result := make([]historyapimodels.HistoryFeedView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, historyapimodels.HistoryFeedConvert(rec))
	}
	return result, nil
}
