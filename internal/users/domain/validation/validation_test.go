package validation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"plazausers/internal/users/domain/entities"
	"plazausers/internal/users/domain/validation"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validUser() *entities.User {
	return &entities.User{
		FirstName: "Ana",
		LastName:  "Diaz",
		Document:  "123456",
		Phone:     "+573001234567",
		BirthDate: date(1990, time.January, 15),
		Email:     "ana@x.co",
		Password:  "secret",
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"ana@x.co", "a.b+c_d-e@sub.domain.com", "A1@B2"}
	invalid := []string{"", "no-at-sign", "@x.co", "ana@", "ana@x_co", "ana b@x.co", "ana@@x.co"}

	for _, e := range valid {
		assert.NoError(t, validation.ValidateEmail(e), e)
	}
	for _, e := range invalid {
		assert.ErrorIs(t, validation.ValidateEmail(e), entities.ErrInvalidEmail, e)
	}

	local := strings.Repeat("a", validation.MaxEmailLength-len("@x.co"))
	assert.NoError(t, validation.ValidateEmail(local+"@x.co"))
	assert.ErrorIs(t, validation.ValidateEmail(local+"a@x.co"), entities.ErrInvalidEmail)
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"+573001234567", true},
		{"3001234567", true},
		{"1", true},
		{"1234567890123", true},
		{"+123456789012", true},
		{"+1234567890123", false},
		{"12345678901234", false},
		{"", false},
		{"+", false},
		{"300-123-4567", false},
		{"++57300", false},
	}

	for _, tt := range tests {
		err := validation.ValidatePhone(tt.phone)
		if tt.ok {
			assert.NoError(t, err, tt.phone)
		} else {
			assert.ErrorIs(t, err, entities.ErrInvalidPhone, tt.phone)
		}
	}
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, validation.ValidateDocument("0123456789"))
	for _, d := range []string{"", "12a", "12 3", "-1"} {
		assert.ErrorIs(t, validation.ValidateDocument(d), entities.ErrInvalidDocument, d)
	}

	assert.NoError(t, validation.ValidateDocument(strings.Repeat("1", validation.MaxDocumentLength)))
	assert.ErrorIs(t, validation.ValidateDocument(strings.Repeat("1", validation.MaxDocumentLength+1)),
		entities.ErrInvalidDocument)
}

func TestValidateNames(t *testing.T) {
	long := strings.Repeat("ñ", validation.MaxNameLength)

	tests := []struct {
		name      string
		firstName string
		lastName  string
		want      error
	}{
		{name: "success", firstName: "Ana", lastName: "Diaz"},
		{name: "success - multibyte at limit", firstName: long, lastName: long},
		{name: "error - empty first name", firstName: "", lastName: "Diaz", want: entities.ErrFirstNameRequired},
		{name: "error - whitespace first name", firstName: " \t", lastName: "Diaz", want: entities.ErrFirstNameRequired},
		{name: "error - empty last name", firstName: "Ana", lastName: "  ", want: entities.ErrLastNameRequired},
		{name: "error - both blank reports first name", firstName: "", lastName: "", want: entities.ErrFirstNameRequired},
		{name: "error - first name too long", firstName: long + "a", lastName: "Diaz", want: entities.ErrNameTooLong},
		{name: "error - last name too long", firstName: "Ana", lastName: long + "a", want: entities.ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateNames(tt.firstName, tt.lastName)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateAge(t *testing.T) {
	today := date(2026, time.October, 16)

	tests := []struct {
		name  string
		birth time.Time
		today time.Time
		ok    bool
	}{
		{name: "eighteenth birthday today", birth: date(2008, time.October, 16), today: today, ok: true},
		{name: "one day short", birth: date(2008, time.October, 17), today: today},
		{name: "adult", birth: date(1990, time.January, 1), today: today, ok: true},
		{name: "child", birth: date(2015, time.May, 5), today: today},
		{name: "missing birth date", birth: time.Time{}, today: today},
		{name: "leap day before march", birth: date(2008, time.February, 29), today: date(2026, time.February, 28)},
		{name: "leap day on march first", birth: date(2008, time.February, 29), today: date(2026, time.March, 1), ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateAge(tt.birth, tt.today)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, entities.ErrUnderage)
			}
		})
	}
}

func TestValidateCommonFieldsOrder(t *testing.T) {
	today := date(2026, time.October, 16)

	tests := []struct {
		name   string
		mutate func(u *entities.User)
		want   error
	}{
		{name: "valid", mutate: func(*entities.User) {}},
		{
			name: "email checked first",
			mutate: func(u *entities.User) {
				u.Email = "bad"
				u.Phone = "bad"
				u.Document = "bad"
				u.BirthDate = time.Time{}
			},
			want: entities.ErrInvalidEmail,
		},
		{
			name: "phone before document",
			mutate: func(u *entities.User) {
				u.Phone = "bad"
				u.Document = "bad"
			},
			want: entities.ErrInvalidPhone,
		},
		{
			name: "document before age",
			mutate: func(u *entities.User) {
				u.Document = "bad"
				u.BirthDate = date(2020, time.January, 1)
			},
			want: entities.ErrInvalidDocument,
		},
		{
			name:   "age last",
			mutate: func(u *entities.User) { u.BirthDate = date(2020, time.January, 1) },
			want:   entities.ErrUnderage,
		},
		{
			name: "names after age",
			mutate: func(u *entities.User) {
				u.FirstName = ""
				u.BirthDate = date(2020, time.January, 1)
			},
			want: entities.ErrUnderage,
		},
		{
			name:   "blank first name",
			mutate: func(u *entities.User) { u.FirstName = "   " },
			want:   entities.ErrFirstNameRequired,
		},
		{
			name:   "blank last name",
			mutate: func(u *entities.User) { u.LastName = "" },
			want:   entities.ErrLastNameRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)

			err := validation.ValidateCommonFields(u, today)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestFullYears(t *testing.T) {
	assert.Equal(t, 36, validation.FullYears(date(1990, time.January, 15), date(2026, time.October, 16)))
	assert.Equal(t, 35, validation.FullYears(date(1990, time.December, 15), date(2026, time.October, 16)))
	assert.Equal(t, 0, validation.FullYears(date(2026, time.October, 16), date(2026, time.October, 16)))
}
