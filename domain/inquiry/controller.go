package inquiry

import (
	"net/http"

	"github.com/psychsphere/backend/config/router"
	"github.com/psychsphere/backend/pkg/constants"
	apperrors "github.com/psychsphere/backend/pkg/errors"
)

func NewInquiryController(service InquiryService) *router.RESTController {
	return router.NewRESTController(
		"InquiryController",
		"/inquiries",
		func(rs *router.RouterService, c *router.RESTController) {
			rs.AddPostHandler(c, "", submitInquiryHandler(service))
			rs.AddGetHandler(c, "", listInquiriesHandler(service))
		},
	)
}

func submitInquiryHandler(service InquiryService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.Response {
		logger := router.GetLogger(ctx)

		var req CreateInquiryRequest

		if err := ctx.ShouldBindJSON(&req); err != nil {
			logger.Error("Inquiry payload rejected", "error", err)

			if fieldErrors := apperrors.FormatValidationErrors(err, &req); len(fieldErrors) > 0 {
				return router.Error(http.StatusUnprocessableEntity, fieldErrors)
			}

			return router.Error(http.StatusUnprocessableEntity, "Invalid request body")
		}

		response, err := service.Submit(ctx.Request.Context(), &req)
		if err != nil {
			return router.Error(apperrors.HTTPStatusCode(err), apperrors.GetHumanReadableMessage(err))
		}

		return router.OK(response)
	}
}

func listInquiriesHandler(service InquiryService) router.HandlerFunction {
	return func(ctx *router.RequestContext) *router.Response {
		limit, errResult := router.ParseLimitQuery(ctx, "limit", constants.DefaultListLimit)
		if errResult != nil {
			return errResult
		}

		response, err := service.List(ctx.Request.Context(), limit)
		if err != nil {
			return router.Error(apperrors.HTTPStatusCode(err), apperrors.GetHumanReadableMessage(err))
		}

		return router.OK(response)
	}
}
