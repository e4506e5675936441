package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketdiary/backend/internal/categories"
	"github.com/pocketdiary/backend/internal/httputil"
	"github.com/pocketdiary/backend/internal/models"
)

// RegisterSettingsRoutes registers the routes for the settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSettings)
		r.GET("", GetSettings)
		r.PUT("", UpdateSettings)
	}

	// Category class operations
	{
		r.OPTIONS("/categories/:class", OptionsCategoryClass)
		r.POST("/categories/:class", AddCategory)
		r.PATCH("/categories/:class", RenameCategory)
		r.DELETE("/categories/:class", RemoveCategory)
		r.PUT("/categories/:class", ReorderCategories)
	}
}

// categorySet resolves a class URI parameter to the matching category list.
func categorySet(settings *models.Settings, class string) (*categories.Set, error) {
	switch class {
	case "fixed":
		return &settings.FixedCategories, nil
	case "flexible":
		return &settings.FlexibleCategories, nil
	case "income":
		return &settings.IncomeCategories, nil
	default:
		return nil, errCategoryClassInvalid
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Failure		400	{object}	httpError
// @Param			class	path	string	true	"Category class: fixed, flexible or income"
// @Router			/v1/settings/categories/{class} [options]
func OptionsCategoryClass(c *gin.Context) {
	var uri URIClass
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var settings models.Settings
	if _, err := categorySet(&settings, uri.Class); err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPostPatchDeletePut(c)
}

// @Summary		Get settings
// @Description	Returns the budget settings
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	data := newSettings(c.GetString(string(models.DBContextURL)), settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Replace settings
// @Description	Replaces the budget settings wholesale. All fields must be specified.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [put]
func UpdateSettings(c *gin.Context) {
	var editable SettingsEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	settings, err := models.ReplaceSettings(models.DB, editable.model())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &s,
		})
		return
	}

	data := newSettings(c.GetString(string(models.DBContextURL)), settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Add category
// @Description	Appends a category to the end of a category list
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategorySetResponse
// @Failure		400			{object}	CategorySetResponse
// @Failure		500			{object}	CategorySetResponse
// @Param			class		path		string				true	"Category class: fixed, flexible or income"
// @Param			category	body		CategoryAddRequest	true	"Category"
// @Router			/v1/settings/categories/{class} [post]
func AddCategory(c *gin.Context) {
	mutateCategories(c, http.StatusCreated, func(set *categories.Set) error {
		var body CategoryAddRequest
		if err := httputil.BindData(c, &body); err != nil {
			return err
		}

		return set.Add(body.Name)
	})
}

// @Summary		Rename category
// @Description	Renames a category, keeping its position in the list. Existing records keep the old category name.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	CategorySetResponse
// @Failure		400			{object}	CategorySetResponse
// @Failure		404			{object}	CategorySetResponse
// @Failure		500			{object}	CategorySetResponse
// @Param			class		path		string					true	"Category class: fixed, flexible or income"
// @Param			category	body		CategoryRenameRequest	true	"Rename"
// @Router			/v1/settings/categories/{class} [patch]
func RenameCategory(c *gin.Context) {
	mutateCategories(c, http.StatusOK, func(set *categories.Set) error {
		var body CategoryRenameRequest
		if err := httputil.BindData(c, &body); err != nil {
			return err
		}

		return set.Rename(body.Name, body.NewName)
	})
}

// @Summary		Remove category
// @Description	Removes a category from a category list. Existing records keep the category name.
// @Tags			Settings
// @Produce		json
// @Success		200		{object}	CategorySetResponse
// @Failure		400		{object}	CategorySetResponse
// @Failure		404		{object}	CategorySetResponse
// @Failure		500		{object}	CategorySetResponse
// @Param			class	path		string	true	"Category class: fixed, flexible or income"
// @Param			name	query		string	true	"Name of the category to remove"
// @Router			/v1/settings/categories/{class} [delete]
func RemoveCategory(c *gin.Context) {
	mutateCategories(c, http.StatusOK, func(set *categories.Set) error {
		return set.Remove(c.Query("name"))
	})
}

// @Summary		Reorder categories
// @Description	Replaces the order of a category list. The new order must contain every existing category exactly once.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategorySetResponse
// @Failure		400		{object}	CategorySetResponse
// @Failure		500		{object}	CategorySetResponse
// @Param			class	path		string					true	"Category class: fixed, flexible or income"
// @Param			order	body		CategoryReorderRequest	true	"New order"
// @Router			/v1/settings/categories/{class} [put]
func ReorderCategories(c *gin.Context) {
	mutateCategories(c, http.StatusOK, func(set *categories.Set) error {
		var body CategoryReorderRequest
		if err := httputil.BindData(c, &body); err != nil {
			return err
		}

		return set.Reorder(body.Names)
	})
}

// mutateCategories loads the settings, applies the mutation to the list the
// class parameter selects and persists the result.
func mutateCategories(c *gin.Context, successStatus int, mutate func(*categories.Set) error) {
	var uri URIClass
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySetResponse{
			Error: &s,
		})
		return
	}

	settings, err := models.LoadSettings(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySetResponse{
			Error: &s,
		})
		return
	}

	set, err := categorySet(&settings, uri.Class)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySetResponse{
			Error: &s,
		})
		return
	}

	err = mutate(set)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySetResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Save(&settings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategorySetResponse{
			Error: &s,
		})
		return
	}

	c.JSON(successStatus, CategorySetResponse{Data: *set})
}
