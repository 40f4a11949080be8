package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/dto"
	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/model"
)

func (r *Router) register(c *gin.Context) {
	var in dto.RegisterDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, customErrors.NewInvalidArgument(err.Error()))
		return
	}

	user, err := r.auth.Register(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

func (r *Router) listUsers(c *gin.Context) {
	users, err := r.auth.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

func (r *Router) getMe(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(currentUser(c)))
}

func (r *Router) updateMe(c *gin.Context) {
	r.applyUserUpdate(c, currentUser(c))
}

func (r *Router) changeMyPassword(c *gin.Context) {
	var in dto.ChangePasswordDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, customErrors.NewInvalidArgument(err.Error()))
		return
	}

	user, err := r.auth.ChangePassword(c.Request.Context(), currentUser(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (r *Router) deleteMe(c *gin.Context) {
	if err := r.auth.DeleteUser(c.Request.Context(), currentUser(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) getUser(c *gin.Context) {
	user, ok := r.userFromPath(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func (r *Router) updateUser(c *gin.Context) {
	user, ok := r.userFromPath(c)
	if !ok {
		return
	}
	r.applyUserUpdate(c, user)
}

func (r *Router) changeRole(c *gin.Context) {
	user, ok := r.userFromPath(c)
	if !ok {
		return
	}

	var in dto.ChangeRoleDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, customErrors.NewInvalidArgument(err.Error()))
		return
	}

	updated, err := r.auth.ChangeRole(c.Request.Context(), user, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(updated))
}

func (r *Router) deleteUser(c *gin.Context) {
	user, ok := r.userFromPath(c)
	if !ok {
		return
	}
	if err := r.auth.DeleteUser(c.Request.Context(), user); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) applyUserUpdate(c *gin.Context, target model.User) {
	var in dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, customErrors.NewInvalidArgument(err.Error()))
		return
	}

	updated, err := r.auth.UpdateUser(c.Request.Context(), target, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(updated))
}

// userFromPath resolves the :user_id path parameter to an account,
// writing the response itself when that fails.
func (r *Router) userFromPath(c *gin.Context) (model.User, bool) {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		writeError(c, customErrors.NewInvalidArgument("user_id must be an integer"))
		return model.User{}, false
	}

	user, err := r.auth.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return model.User{}, false
	}
	return user, true
}
