package service

import (
	"fmt"

	"github.com/samandr77/microservices/dealsync/internal/entity"
)

func validateJob(job entity.Job) error {
	if job.JobNumber == "" || job.DealName == "" {
		return fmt.Errorf("missing job number or deal name: %w", entity.ErrInvalidArgument)
	}

	return nil
}
