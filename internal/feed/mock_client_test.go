package feed_test

import (
	"github.com/lskolhar/complain-hub/internal/models"
)

type MockClient struct {
	id     string
	Recv   chan models.ComplaintEvent
	ran    bool
	closed bool
}

func newMockClient(id string, buffer int) *MockClient {
	return &MockClient{
		id:   id,
		Recv: make(chan models.ComplaintEvent, buffer),
	}
}

func (c *MockClient) GetID() string {
	return c.id
}

func (c *MockClient) GetSendChannel() chan<- models.ComplaintEvent {
	return c.Recv
}

func (c *MockClient) Run() {
	c.ran = true
}

func (c *MockClient) Close() {
	c.closed = true
}
