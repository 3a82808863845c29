package subject

import (
	"context"
	"time"

	"github.com/campusdesk/campusdesk-backend-go/internal/domain/subject"
)

type subjectService struct {
	subjectRepo subject.SubjectRepository
}

// NewSubjectService creates a new subject service
func NewSubjectService(subjectRepo subject.SubjectRepository) subject.SubjectService {
	return &subjectService{subjectRepo: subjectRepo}
}

// CreateSubject adds a subject to the HOD's branch catalog
func (s *subjectService) CreateSubject(ctx context.Context, req subject.CreateSubjectRequest) (subject.SubjectResponse, error) {
	if err := req.Validate(); err != nil {
		return subject.SubjectResponse{}, err
	}

	created, err := s.subjectRepo.Create(ctx, subject.Subject{
		Name:      req.Name,
		Code:      req.Code,
		Year:      req.Year,
		BranchID:  req.BranchID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return subject.SubjectResponse{}, err
	}

	return subject.ToResponse(created), nil
}

// ListSubjects retrieves a branch's subjects, optionally by year
func (s *subjectService) ListSubjects(ctx context.Context, branchID string, year *int) ([]subject.SubjectResponse, error) {
	subjects, err := s.subjectRepo.ListByBranch(ctx, branchID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]subject.SubjectResponse, len(subjects))
	for i, sub := range subjects {
		responses[i] = subject.ToResponse(sub)
	}

	return responses, nil
}

// ListSubjectsByYear groups a branch's subjects by year level. Every year
// key is present even when its list is empty.
func (s *subjectService) ListSubjectsByYear(ctx context.Context, branchID string) (map[int][]subject.SubjectResponse, error) {
	subjects, err := s.subjectRepo.ListByBranch(ctx, branchID, nil)
	if err != nil {
		return nil, err
	}

	grouped := make(map[int][]subject.SubjectResponse, len(subject.Years))
	for _, year := range subject.Years {
		grouped[year] = []subject.SubjectResponse{}
	}
	for _, sub := range subjects {
		grouped[sub.Year] = append(grouped[sub.Year], subject.ToResponse(sub))
	}

	return grouped, nil
}

// UpdateSubject overwrites name, code and year
func (s *subjectService) UpdateSubject(ctx context.Context, req subject.UpdateSubjectRequest) (subject.SubjectResponse, error) {
	if err := req.Validate(); err != nil {
		return subject.SubjectResponse{}, err
	}

	updated, err := s.subjectRepo.Update(ctx, subject.Subject{
		ID:   req.ID,
		Name: req.Name,
		Code: req.Code,
		Year: req.Year,
	})
	if err != nil {
		return subject.SubjectResponse{}, err
	}

	return subject.ToResponse(updated), nil
}

// DeleteSubject removes a subject from the catalog
func (s *subjectService) DeleteSubject(ctx context.Context, id string) error {
	return s.subjectRepo.Delete(ctx, id)
}
