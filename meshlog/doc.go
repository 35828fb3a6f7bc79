// Package meshlog is the structured-logging facade package ops's
// multi-phase compound operations (bevel and extrude) use to report
// the connectivity rewrite they performed, grounded on the pack's one
// real structured-logging dependency, github.com/sirupsen/logrus (seen
// wired into a solver's scheduling loop via Debugf calls).
package meshlog
