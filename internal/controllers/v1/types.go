package v1

import (
	bp_uuid "github.com/rhizvo/Budget-Planner/internal/uuid"
)

type URIID struct {
	ID bp_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
