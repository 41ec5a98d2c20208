package models

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Role — закрытый набор ролей пользователя.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleCoordinator   Role = "coordinator"
	RoleOperator      Role = "operator"
	RoleEPPUser       Role = "epp_user"
)

// Roles — все допустимые роли, в порядке убывания прав.
var Roles = []Role{RoleAdministrator, RoleCoordinator, RoleOperator, RoleEPPUser}

func (r Role) Valid() bool { return slices.Contains(Roles, r) }

func (r Role) String() string { return string(r) }

// ParseRole возвращает ошибку для любого значения вне перечисления.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("invalid role %q, want one of %v", s, Roles)
	}
	return r, nil
}

// UnmarshalJSON отсекает неизвестные роли на границе десериализации.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("role must be a string: %w", err)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
