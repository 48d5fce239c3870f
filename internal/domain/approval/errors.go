package approval

import "errors"

var (
	ErrNotAuthorizedToApprove = errors.New("you are not authorized to approve this request")
	ErrNoApproverAvailable    = errors.New("no approver is available for this request")
)
