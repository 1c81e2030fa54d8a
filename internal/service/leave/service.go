package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/period"
)

type LeaveServiceImpl struct {
	tx          database.TxRunner
	loc         *time.Location
	maxPerMonth int
	leave.LeaveRequestRepository
}

func NewLeaveService(tx database.TxRunner, leaveRequestRepo leave.LeaveRequestRepository, loc *time.Location, maxPerMonth int) leave.LeaveService {
	return &LeaveServiceImpl{
		tx:                     tx,
		loc:                    loc,
		maxPerMonth:            maxPerMonth,
		LeaveRequestRepository: leaveRequestRepo,
	}
}

// Submit implements leave.LeaveService. The cap is anchored to the calendar
// month containing from_date, not the submission date. PENDING requests count
// against the cap alongside APPROVED ones so that two pending requests which
// individually fit cannot jointly exceed it.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.SubmitLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.SubmitLeaveResponse{}, err
	}

	fromDate, err := time.ParseInLocation("2006-01-02", req.FromDate, s.loc)
	if err != nil {
		return leave.SubmitLeaveResponse{}, fmt.Errorf("failed to parse from date: %w", err)
	}
	toDate, err := time.ParseInLocation("2006-01-02", req.ToDate, s.loc)
	if err != nil {
		return leave.SubmitLeaveResponse{}, fmt.Errorf("failed to parse to date: %w", err)
	}

	totalDays := period.DaysInclusive(fromDate, toDate, s.loc)
	if totalDays <= 0 {
		return leave.SubmitLeaveResponse{}, leave.ErrInvalidDateRange
	}

	var resp leave.SubmitLeaveResponse
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		monthStart, monthEnd := period.MonthWindow(fromDate, s.loc)

		usedDays, err := s.LeaveRequestRepository.SumDaysInWindow(ctx, req.EmployeeID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to sum used leave days: %w", err)
		}

		if usedDays+totalDays > s.maxPerMonth {
			return &leave.LimitExceededError{
				MaxPerMonth:   s.maxPerMonth,
				RemainingDays: s.maxPerMonth - usedDays,
			}
		}

		created, err := s.LeaveRequestRepository.Create(ctx, leave.LeaveRequest{
			EmployeeID: req.EmployeeID,
			FromDate:   fromDate,
			ToDate:     toDate,
			Reason:     req.Reason,
			TotalDays:  totalDays,
			Status:     leave.LeaveRequestStatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}

		resp = leave.SubmitLeaveResponse{
			LeaveRequest:  leave.MapToResponse(created),
			RemainingDays: s.maxPerMonth - usedDays - totalDays,
		}
		return nil
	})
	if err != nil {
		return leave.SubmitLeaveResponse{}, err
	}

	return resp, nil
}

// Decide implements leave.LeaveService. Transitions out of a terminal state
// are rejected; no allowance recomputation happens at decision time.
func (s *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	var decided leave.LeaveRequest
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(ctx, req.ID)
		if err != nil {
			return err
		}

		if request.Status.IsTerminal() {
			return leave.ErrLeaveAlreadyProcessed
		}

		status := leave.LeaveRequestStatus(req.Status)
		if err := s.LeaveRequestRepository.UpdateStatus(ctx, request.ID, status); err != nil {
			return err
		}

		decided = request
		decided.Status = status
		return nil
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.MapToResponse(decided), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.MapToResponse(req))
	}

	return responses, nil
}
