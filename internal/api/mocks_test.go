package api

import (
	"context"
	"sync"

	"catalog-backend/internal/model"
	"catalog-backend/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockProductStore struct {
	m        sync.RWMutex
	order    []primitive.ObjectID
	products map[primitive.ObjectID]model.Product
	err      error
}

func newMockProductStore() *mockProductStore {
	return &mockProductStore{products: map[primitive.ObjectID]model.Product{}}
}

func (m *mockProductStore) ListProducts(_ context.Context, userEmail string) ([]model.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []model.Product{}
	for _, id := range m.order {
		p, ok := m.products[id]
		if !ok {
			continue
		}
		if userEmail != "" && p.UserEmail != userEmail {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProductStore) GetProduct(_ context.Context, id string) (*model.Product, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[oid]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *mockProductStore) CreateProduct(_ context.Context, p *model.Product) (model.InsertResult, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return model.InsertResult{}, m.err
	}
	p.ID = primitive.NewObjectID()
	m.products[p.ID] = *p
	m.order = append(m.order, p.ID)
	return model.InsertResult{Acknowledged: true, InsertedID: p.ID}, nil
}

func (m *mockProductStore) UpdateProduct(_ context.Context, id string, in model.ProductInput) (model.UpdateResult, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return model.UpdateResult{}, m.err
	}
	if _, ok := m.products[oid]; !ok {
		return model.UpdateResult{Success: true}, nil
	}
	p := in.Product()
	p.ID = oid
	m.products[oid] = *p
	return model.UpdateResult{Success: true, Modified: true}, nil
}

func (m *mockProductStore) DeleteProduct(_ context.Context, id string) (model.DeleteResult, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return model.DeleteResult{}, err
	}
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return model.DeleteResult{}, m.err
	}
	if _, ok := m.products[oid]; !ok {
		return model.DeleteResult{Acknowledged: true}, nil
	}
	delete(m.products, oid)
	return model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type mockUserStore struct {
	m     sync.RWMutex
	users []model.User
	err   error
}

func (m *mockUserStore) ListUsers(context.Context) ([]model.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]model.User{}, m.users...), nil
}

func (m *mockUserStore) CreateUser(_ context.Context, u model.User) (model.InsertResult, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return model.InsertResult{}, m.err
	}
	id := primitive.NewObjectID()
	doc := u.Document()
	doc["_id"] = id
	m.users = append(m.users, model.UserFromDocument(doc))
	return model.InsertResult{Acknowledged: true, InsertedID: id}, nil
}
