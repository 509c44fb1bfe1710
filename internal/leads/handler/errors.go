package handler

import apperrors "radar/pkg/errors"

var errMissingCriteria = apperrors.InvalidInput("Request body with filter criteria is required")
