package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
	"github.com/freelancehub/marketplace-system/internal/core/ports"
)

type BidHandler struct {
	bidService ports.BidService
}

func NewBidHandler(bidService ports.BidService) *BidHandler {
	return &BidHandler{bidService: bidService}
}

type createBidRequest struct {
	ProjectID string  `json:"project_id" validate:"required"`
	BidAmount float64 `json:"bid_amount" validate:"required,gt=0"`
	Proposal  string  `json:"proposal" validate:"required"`
}

type updateBidRequest struct {
	BidAmount *float64 `json:"bid_amount,omitempty" validate:"omitempty,gt=0"`
	Proposal  *string  `json:"proposal,omitempty"`
	Status    *string  `json:"status,omitempty" validate:"omitempty,oneof=submitted accepted rejected withdrawn"`
}

// Create submits a bid by the authenticated freelancer.
//
// @Summary      Submit a bid
// @Tags         bids
// @Router       /bids [post]
func (h *BidHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bid, err := h.bidService.Create(c.Request().Context(), claims, ports.CreateBidInput{
		ProjectID: req.ProjectID,
		BidAmount: req.BidAmount,
		Proposal:  req.Proposal,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bid)
}

// ListByProject returns the bids submitted on a project.
//
// @Summary      List project bids
// @Tags         bids
// @Router       /projects/{id}/bids [get]
func (h *BidHandler) ListByProject(c echo.Context) error {
	bids, err := h.bidService.ListByProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bids)
}

// Get returns a single bid.
//
// @Summary      Get a bid
// @Tags         bids
// @Router       /bids/{id} [get]
func (h *BidHandler) Get(c echo.Context) error {
	bid, err := h.bidService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bid)
}

// Update mutates a bid. Only the bidding freelancer may do this.
//
// @Summary      Update a bid
// @Tags         bids
// @Router       /bids/{id} [patch]
func (h *BidHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateBidInput{
		BidAmount: req.BidAmount,
		Proposal:  req.Proposal,
	}
	if req.Status != nil {
		status := domain.BidStatus(*req.Status)
		input.Status = &status
	}

	bid, err := h.bidService.Update(c.Request().Context(), claims, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bid)
}

// Delete withdraws a bid entirely. Only the bidding freelancer may do this.
//
// @Summary      Delete a bid
// @Tags         bids
// @Router       /bids/{id} [delete]
func (h *BidHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}
	if err := h.bidService.Delete(c.Request().Context(), claims, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
