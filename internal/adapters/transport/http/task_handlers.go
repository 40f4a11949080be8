package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/dto"
	customErrors "github.com/Miraines/MoonyAndStarry/task-service/internal/domain/auth/errors"
)

func (r *Router) createTask(c *gin.Context) {
	var in dto.CreateTaskDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, customErrors.NewInvalidArgument(err.Error()))
		return
	}

	task, err := r.tasks.Create(c.Request.Context(), currentUser(c), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTaskResponse(task))
}

func (r *Router) listMyTasks(c *gin.Context) {
	tasks, err := r.tasks.ListOwn(c.Request.Context(), currentUser(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

func (r *Router) listAllTasks(c *gin.Context) {
	tasks, err := r.tasks.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponses(tasks))
}

func (r *Router) getTask(c *gin.Context) {
	id, ok := taskIDFromPath(c)
	if !ok {
		return
	}

	task, err := r.tasks.Get(c.Request.Context(), currentUser(c), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (r *Router) updateTask(c *gin.Context) {
	id, ok := taskIDFromPath(c)
	if !ok {
		return
	}

	var in dto.UpdateTaskDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, customErrors.NewInvalidArgument(err.Error()))
		return
	}

	task, err := r.tasks.Update(c.Request.Context(), currentUser(c), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (r *Router) changeTaskUser(c *gin.Context) {
	id, ok := taskIDFromPath(c)
	if !ok {
		return
	}

	var in dto.ChangeTaskUserDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, customErrors.NewInvalidArgument(err.Error()))
		return
	}

	task, err := r.tasks.ChangeUser(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTaskResponse(task))
}

func (r *Router) deleteTask(c *gin.Context) {
	id, ok := taskIDFromPath(c)
	if !ok {
		return
	}

	if err := r.tasks.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func taskIDFromPath(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("task_id"), 10, 64)
	if err != nil {
		writeError(c, customErrors.NewInvalidArgument("task_id must be an integer"))
		return 0, false
	}
	return id, true
}
