package contract

import (
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	GetUsers   = define[model.GetUsersRequest, []model.User](pattern.GetUsers)
	CreateUser = define[model.UserRequest, string](pattern.CreateUser)
	GetUser    = define[model.NameRequest, model.User](pattern.GetUser)
	UpdateUser = define[model.UserRequest, string](pattern.UpdateUser)
	DeleteUser = define[model.NameRequest, string](pattern.DeleteUser)

	GetTeams   = define[Empty, []model.Team](pattern.GetTeams)
	CreateTeam = define[model.TeamRequest, string](pattern.CreateTeam)
	GetTeam    = define[model.NameRequest, model.Team](pattern.GetTeam)
	UpdateTeam = define[model.TeamRequest, string](pattern.UpdateTeam)
	DeleteTeam = define[model.NameRequest, string](pattern.DeleteTeam)

	GetGrants   = define[model.GetGrantsRequest, []model.Grant](pattern.GetGrants)
	CreateGrant = define[model.GrantRequest, string](pattern.CreateGrant)
	GetGrant    = define[model.NameRequest, model.Grant](pattern.GetGrant)
	UpdateGrant = define[model.GrantRequest, string](pattern.UpdateGrant)
	DeleteGrant = define[model.NameRequest, string](pattern.DeleteGrant)
)
