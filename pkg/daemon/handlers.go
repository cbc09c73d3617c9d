package daemon

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/charlie0129/schmitt/pkg/config"
	"github.com/charlie0129/schmitt/pkg/design"
	"github.com/charlie0129/schmitt/pkg/eseries"
	"github.com/charlie0129/schmitt/pkg/events"
	"github.com/charlie0129/schmitt/pkg/spec"
	"github.com/charlie0129/schmitt/pkg/version"
)

func getConfig(c *gin.Context) {
	fc, err := config.NewRawFileConfigFromConfig(conf)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, fc)
}

// bindRequest reads optional overrides. An empty body means no overrides.
func bindRequest(c *gin.Context) (design.Request, bool) {
	var req design.Request
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return req, false
	}
	return req, true
}

// configuredOptions returns the run options stored in the config.
func configuredOptions() design.Options {
	return design.Options{
		Scales:  conf.Scales(),
		Workers: conf.Workers(),
	}
}

// abortWithValidationError answers 422 with every violation.
func abortWithValidationError(c *gin.Context, err error) bool {
	ve, ok := spec.AsValidationError(err)
	if !ok {
		return false
	}
	c.IndentedJSON(http.StatusUnprocessableEntity, ve)
	_ = c.AbortWithError(http.StatusUnprocessableEntity, err)
	return true
}

func setConfig(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	s, opts := req.Resolve(conf.Spec(), configuredOptions())
	if err := design.Validate(s, opts); err != nil {
		abortWithValidationError(c, err)
		return
	}

	conf.SetVCC(s.VCC)
	conf.SetLowTarget(s.LowTarget)
	conf.SetHighTarget(s.HighTarget)
	conf.SetTolerancePercent(s.TolerancePercent)
	conf.SetScales(opts.Scales)
	conf.SetWorkers(opts.Workers)
	if err := conf.Save(); err != nil {
		logrus.Errorf("saveConfig failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.WithFields(s.LogrusFields()).Info("set default specification")
	publishConfigChanged("update")

	c.IndentedJSON(http.StatusCreated, "ok")
}

func postDesign(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	s, opts := req.Resolve(conf.Spec(), configuredOptions())
	report, err := design.Run(s, opts)
	if err != nil {
		if abortWithValidationError(c, err) {
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	logrus.WithFields(s.LogrusFields()).WithField("resistors", report.Solution.Resistors.String()).Info("design completed")
	sseHub.Publish(events.DesignCompleted, events.DesignCompletedEvent{
		VCC:        s.VCC,
		LowTarget:  s.LowTarget,
		HighTarget: s.HighTarget,
		R1:         report.Solution.Resistors.R1,
		R2:         report.Solution.Resistors.R2,
		R3:         report.Solution.Resistors.R3,
		Error:      report.Solution.Error,
		WorstError: report.WorstCase.Error,
		Ts:         time.Now().Unix(),
	})

	c.IndentedJSON(http.StatusOK, report)
}

func postValidate(c *gin.Context) {
	req, ok := bindRequest(c)
	if !ok {
		return
	}

	s, opts := req.Resolve(conf.Spec(), configuredOptions())
	if err := design.Validate(s, opts); err != nil {
		abortWithValidationError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, "ok")
}

func getSeries(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, eseries.Expand(eseries.E24, conf.Scales()))
}

func getTolerances(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, spec.SupportedTolerances)
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

func publishConfigChanged(reason string) {
	sseHub.Publish(events.ConfigChanged, events.ConfigChangedEvent{
		Reason: reason,
		Ts:     time.Now().Unix(),
	})
}
