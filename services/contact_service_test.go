package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"divyaAPI/internal/apperr"
	"divyaAPI/internal/contact"
	"divyaAPI/internal/storage/memory"
)

func TestContactService_Submit(t *testing.T) {
	tests := []struct {
		name    string
		req     contact.CreateContactRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  contact.CreateContactRequest{Name: "Arjuna", Email: "arjuna@example.com", Message: "Namaste"},
		},
		{
			name:    "empty name",
			req:     contact.CreateContactRequest{Name: "", Email: "arjuna@example.com", Message: "Namaste"},
			wantErr: "name is required",
		},
		{
			name:    "whitespace message",
			req:     contact.CreateContactRequest{Name: "Arjuna", Email: "arjuna@example.com", Message: "   "},
			wantErr: "message is required",
		},
		{
			name:    "malformed email",
			req:     contact.CreateContactRequest{Name: "Arjuna", Email: "arjuna-at-kurukshetra", Message: "Namaste"},
			wantErr: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := memory.New()
			svc := NewContactService(db, zap.NewNop())

			req := tt.req
			c, err := svc.Submit(context.Background(), &req)

			if tt.wantErr != "" {
				require.ErrorIs(t, err, apperr.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, db.Contacts(), "nothing stored on validation failure")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Arjuna", c.Name)
			assert.False(t, c.CreatedAt.IsZero())
			assert.Len(t, db.Contacts(), 1)
		})
	}
}
