package usersv1_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	usersv1 "plazausers/pkg/api/users/v1"
)

func TestServiceDescriptor(t *testing.T) {
	svc := usersv1.File_users_v1_users_proto.Services().Get(0)
	assert.Equal(t, usersv1.ServiceName, string(svc.FullName()))
	assert.Equal(t, usersv1.ServiceName, usersv1.UsersService_ServiceDesc.ServiceName)
	assert.Equal(t, 6, svc.Methods().Len())
}

func TestRestaurantIDPresence(t *testing.T) {
	t.Run("success - absent restaurant survives the wire", func(t *testing.T) {
		raw, err := proto.Marshal(&usersv1.CreateUserRequest{Email: "a@b.com"})
		require.NoError(t, err)

		var decoded usersv1.CreateUserRequest
		require.NoError(t, proto.Unmarshal(raw, &decoded))
		assert.Nil(t, decoded.RestaurantId)
		assert.Equal(t, int64(0), decoded.GetRestaurantId())
	})

	t.Run("success - explicit zero restaurant is kept", func(t *testing.T) {
		zero := int64(0)
		raw, err := proto.Marshal(&usersv1.UserResponse{Id: 1, RestaurantId: &zero})
		require.NoError(t, err)

		var decoded usersv1.UserResponse
		require.NoError(t, proto.Unmarshal(raw, &decoded))
		require.NotNil(t, decoded.RestaurantId)
		assert.Equal(t, int64(0), *decoded.RestaurantId)
	})
}

func TestJSONNames(t *testing.T) {
	raw, err := protojson.Marshal(&usersv1.LoginResponse{Token: "jwt", UserId: 3, ExpiresIn: 1000})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"userId":"3"`)
	assert.Contains(t, string(raw), `"expiresIn":"1000"`)
}
