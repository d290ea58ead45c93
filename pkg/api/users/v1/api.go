// Package usersv1 содержит сгенерированный контракт gRPC-сервиса plaza.users.v1.UsersService.
package usersv1

//go:generate protoc -I ../../../../api --go_out=../../../.. --go_opt=module=plazausers --go-grpc_out=../../../.. --go-grpc_opt=module=plazausers users/v1/users.proto

// ServiceName - полное имя сервиса, под которым он регистрируется в health.
const ServiceName = "plaza.users.v1.UsersService"

// DateLayout - формат поля birth_date.
const DateLayout = "2006-01-02"
