package api

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/Mohib75/study-syncer-server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("store unavailable")

// memAssignments is an in-memory AssignmentStore ordered by id.
type memAssignments struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Assignment
	err  error
}

func newMemAssignments() *memAssignments {
	return &memAssignments{docs: map[primitive.ObjectID]models.Assignment{}}
}

func (m *memAssignments) sorted() []models.Assignment {
	out := make([]models.Assignment, 0, len(m.docs))
	for _, doc := range m.docs {
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out
}

func (m *memAssignments) List(_ context.Context, page *models.Page) ([]models.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}

	all := m.sorted()
	if page == nil {
		return all, nil
	}
	start := page.Skip()
	if start >= int64(len(all)) {
		return []models.Assignment{}, nil
	}
	end := start + page.Size
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[start:end], nil
}

func (m *memAssignments) GetByID(_ context.Context, id primitive.ObjectID) (*models.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	doc, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (m *memAssignments) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.docs)), nil
}

func (m *memAssignments) Create(_ context.Context, a *models.Assignment) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	doc := *a
	doc.ID = primitive.NewObjectID()
	m.docs[doc.ID] = doc
	return &models.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

func (m *memAssignments) Update(_ context.Context, id primitive.ObjectID, u models.AssignmentUpdate) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	doc, existed := m.docs[id]
	doc.ID = id
	if u.Title != nil {
		doc.Title = *u.Title
	}
	if u.Image != nil {
		doc.Image = *u.Image
	}
	if u.Description != nil {
		doc.Description = *u.Description
	}
	if u.Marks != nil {
		doc.Marks = *u.Marks
	}
	if u.Difficulty != nil {
		doc.Difficulty = *u.Difficulty
	}
	if u.Date != nil {
		doc.Date = *u.Date
	}
	m.docs[id] = doc

	if existed {
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id.Hex()}, nil
}

func (m *memAssignments) Delete(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.docs[id]; !ok {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	delete(m.docs, id)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type memSubmissions struct {
	mu   sync.Mutex
	docs []models.SubmittedAssignment
}

func (m *memSubmissions) List(context.Context) ([]models.SubmittedAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.SubmittedAssignment{}, m.docs...), nil
}

func (m *memSubmissions) ListByEmail(_ context.Context, email string) ([]models.SubmittedAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.SubmittedAssignment{}
	for _, doc := range m.docs {
		if doc.Email == email {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *memSubmissions) GetByID(_ context.Context, id primitive.ObjectID) (*models.SubmittedAssignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if doc.ID == id {
			found := doc
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memSubmissions) Create(_ context.Context, s *models.SubmittedAssignment) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := *s
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

func (m *memSubmissions) Grade(_ context.Context, id primitive.ObjectID, g models.GradeUpdate) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.docs {
		if m.docs[i].ID != id {
			continue
		}
		if g.ObtainedMarks != nil {
			marks := *g.ObtainedMarks
			m.docs[i].ObtainedMarks = &marks
		}
		if g.Feedback != nil {
			m.docs[i].Feedback = *g.Feedback
		}
		return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id.Hex()}, nil
}

type memCourses struct {
	mu   sync.Mutex
	docs []models.Course
}

func (m *memCourses) List(_ context.Context, page *models.Page) ([]models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := append([]models.Course{}, m.docs...)
	if page == nil {
		return all, nil
	}
	start := page.Skip()
	if start >= int64(len(all)) {
		return []models.Course{}, nil
	}
	end := start + page.Size
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[start:end], nil
}

func (m *memCourses) GetByID(_ context.Context, id primitive.ObjectID) (*models.Course, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, doc := range m.docs {
		if doc.ID == id {
			found := doc
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memCourses) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.docs)), nil
}

func (m *memCourses) Create(_ context.Context, course *models.Course) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := *course
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

type memEnrollments struct {
	mu   sync.Mutex
	docs []models.EnrolledCourse
}

func (m *memEnrollments) ListByEmail(_ context.Context, email string) ([]models.EnrolledCourse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.EnrolledCourse{}
	for _, doc := range m.docs {
		if doc.Email == email {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *memEnrollments) Create(_ context.Context, e *models.EnrolledCourse) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc := *e
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: doc.ID.Hex()}, nil
}

// fakePayments records the requested amount and returns a canned secret.
type fakePayments struct {
	amounts []int64
	err     error
}

func (f *fakePayments) CreatePaymentIntent(_ context.Context, amount int64) (string, error) {
	f.amounts = append(f.amounts, amount)
	if f.err != nil {
		return "", f.err
	}
	return "pi_test_secret", nil
}

type fakeHealth struct {
	err error
}

func (f fakeHealth) Ping(context.Context) error {
	return f.err
}
