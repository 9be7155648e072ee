package models

type RequestStatus string

const (
	RequestStatusPending          RequestStatus = "Pending"
	RequestStatusApprovedByMaster RequestStatus = "ApprovedByMaster"
	RequestStatusAssigned         RequestStatus = "Assigned"
	RequestStatusSubmitted        RequestStatus = "Submitted"
	RequestStatusChangesRequested RequestStatus = "ChangesRequested"
	RequestStatusFinalized        RequestStatus = "Finalized"
	RequestStatusRejected         RequestStatus = "Rejected"
)

var statusHumanName = map[RequestStatus]string{
	RequestStatusPending:          "Pending",
	RequestStatusApprovedByMaster: "Approved by Master",
	RequestStatusAssigned:         "Assigned",
	RequestStatusSubmitted:        "Submitted",
	RequestStatusChangesRequested: "Changes requested",
	RequestStatusFinalized:        "Finalized",
	RequestStatusRejected:         "Rejected",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := statusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	_, exist := statusHumanName[s]
	return exist
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusFinalized || s == RequestStatusRejected
}

// statusRank orders the lifecycle so that task assignment never moves a
// request backwards (a submitted request stays submitted when another
// team is assigned).
var statusRank = map[RequestStatus]int{
	RequestStatusPending:          0,
	RequestStatusApprovedByMaster: 1,
	RequestStatusAssigned:         2,
	RequestStatusChangesRequested: 3,
	RequestStatusSubmitted:        4,
	RequestStatusFinalized:        5,
	RequestStatusRejected:         5,
}

// AllowAssign reports whether assigning a task may raise the status to
// Assigned. Statuses at or past Assigned keep their current value.
func (s RequestStatus) AllowAssign() bool {
	return statusRank[s] < statusRank[RequestStatusAssigned]
}

// AllowReject reports whether the request can be rejected outright by
// the Master. Only an untriaged request can be.
func (s RequestStatus) AllowReject() bool {
	return s == RequestStatusPending
}

type RequestType string

const (
	RequestTypeMedia  RequestType = "Media"
	RequestTypeDesign RequestType = "Design"
	RequestTypeEvent  RequestType = "Event"
	RequestTypePR     RequestType = "PR"
	RequestTypeSocial RequestType = "Social"
)

func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeMedia, RequestTypeDesign, RequestTypeEvent, RequestTypePR, RequestTypeSocial:
		return true
	}
	return false
}

type ReviewDecision string

const (
	ReviewApprove ReviewDecision = "APPROVE"
	ReviewReject  ReviewDecision = "REJECT"
)

func (d ReviewDecision) IsValid() bool {
	return d == ReviewApprove || d == ReviewReject
}

// History actions as they appear in the audit timeline.
const (
	HistoryRequestCreated    = "Request Created"
	HistoryTaskAssigned      = "Task Assigned"
	HistoryWorkSubmitted     = "Work Submitted"
	HistoryRequestFinalized  = "Request Finalized"
	HistoryChangesRequested  = "Changes Requested"
	HistoryRequestRejected   = "Request Rejected"
	HistorySubmissionRemoved = "Submission Removed"
)
