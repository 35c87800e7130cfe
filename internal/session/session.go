// Package session drives one interactive worksheet session: it prompts for
// geometry, material, tooling, and per-pass cutting parameters, computes the
// machining times and per-part costs, and appends the resulting pass rows to
// the worksheet.
package session

import (
	"context"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/moatteya/Turning-worksheet/internal/catalog"
	"github.com/moatteya/Turning-worksheet/internal/config"
	"github.com/moatteya/Turning-worksheet/internal/costing"
	"github.com/moatteya/Turning-worksheet/internal/logger"
	"github.com/moatteya/Turning-worksheet/internal/machining"
	"github.com/moatteya/Turning-worksheet/internal/prompt"
	"github.com/moatteya/Turning-worksheet/internal/sheet"
)

// Worker runs the interactive estimator against one worksheet.
type Worker struct {
	prompter *prompt.Prompter
	out      io.Writer
	store    *sheet.Store
	cfg      *config.Config
	variant  machining.Variant
	logger   logger.Interface
}

// New creates a Worker reading operator input from in and writing prompts
// and results to out.
func New(in io.Reader, out io.Writer, store *sheet.Store, cfg *config.Config, log logger.Interface) *Worker {
	return &Worker{
		prompter: prompt.New(in, out),
		out:      out,
		store:    store,
		cfg:      cfg,
		variant:  cfg.Variant(),
		logger:   log,
	}
}

// Geometry is the stock description captured once at the start of a session.
// The diameter pair doubles as milling width and depth.
type Geometry struct {
	FullLength    float64
	WorkingLength float64
	StartDiameter float64 // da; milling width
	FinalDiameter float64 // db; milling depth
}

// passInput is the per-pass prompt outcome fed to the calculator.
type passInput struct {
	op   machining.Operation
	dimA float64
	dimB float64
}

// Start walks the operator through the session: geometry, material, tool,
// shared cutting parameters, up to two passes, cost inputs, and finally the
// worksheet append and cost summary. Declining both passes ends the session
// cleanly without writing anything.
func (w *Worker) Start(ctx context.Context) error {
	fmt.Fprintln(w.out, "=== Turning/Milling Worksheet Populator (t_mc from V_f) ===")
	w.logger.Info("session started", "sheet", w.store.Path(), "variant", string(w.variant))

	geo, err := w.promptGeometry()
	if err != nil {
		return err
	}

	mat, err := w.pickMaterial()
	if err != nil {
		return err
	}
	tool, err := w.pickTool()
	if err != nil {
		return err
	}

	weight, volume := costing.StockWeight(mat.Density, geo.StartDiameter, geo.FullLength)
	fmt.Fprintf(w.out, "\nEstimated stock weight: %.2f lb  (volume %.2f in^3)\n", weight, volume)

	power, err := w.prompter.FloatDefault("Available power P_m (hp)", w.cfg.Defaults.Power)
	if err != nil {
		return err
	}
	wearExponent, err := w.prompter.WearExponent("Tooling constant n (0<n<1)", w.cfg.Defaults.WearExponent)
	if err != nil {
		return err
	}
	setupHours, err := w.prompter.FloatDefault("Setup time per batch (hr)", w.cfg.Defaults.SetupHours)
	if err != nil {
		return err
	}
	loadUnload, err := w.prompter.FloatDefault("Load & unload time (s)", w.cfg.Defaults.LoadUnloadSeconds)
	if err != nil {
		return err
	}
	positioning, err := w.prompter.FloatDefault("Tool positioning time (s)", w.cfg.Defaults.PositioningSeconds)
	if err != nil {
		return err
	}

	var rows []sheet.Row
	var passTimes []float64
	var chainedRough float64
	var roughChained bool
	sharedEnergy := mat.CuttingEnergy

	includeRough, err := w.prompter.Confirm("Include ROUGH pass? [Y/n]: ")
	if err != nil {
		return err
	}
	if includeRough {
		in, err := w.roughInput(geo)
		if err != nil {
			return err
		}
		sharedEnergy, err = w.prompter.FloatDefault("Rough: specific cutting energy p_s (hp·min/in^3)", mat.CuttingEnergy)
		if err != nil {
			return err
		}
		surfaceRate, err := w.prompter.Float("Rough: rate of surface generation V_f (in^2/min)")
		if err != nil {
			return err
		}

		result, err := machining.Compute(machining.PassParams{
			Operation:     in.op,
			Length:        geo.WorkingLength,
			DimensionA:    in.dimA,
			DimensionB:    in.dimB,
			CuttingEnergy: sharedEnergy,
			Power:         power,
			WearExponent:  wearExponent,
			SurfaceRate:   surfaceRate,
		}, w.variant)
		if err != nil {
			return err
		}

		if in.op != machining.OpMilling {
			chainedRough = in.dimB
			roughChained = true
		}
		rows = append(rows, buildRow(tool, setupHours, loadUnload, positioning,
			geo.WorkingLength, in, sharedEnergy, power, surfaceRate, result,
			"Rough", mat.Name, fmt.Sprintf("Weight=%.2f lb", weight)))
		passTimes = append(passTimes, result.TravelCorrected)
		w.logger.Info("rough pass computed",
			"operation", string(in.op), "travel_corrected_s", result.TravelCorrected)
	}

	includeFinish, err := w.prompter.Confirm("Include FINISH pass? [Y/n]: ")
	if err != nil {
		return err
	}
	if includeFinish {
		in, err := w.finishInput(geo, chainedRough, roughChained)
		if err != nil {
			return err
		}
		surfaceRate, err := w.prompter.Float("Finish: rate of surface generation V_f (in^2/min)")
		if err != nil {
			return err
		}

		result, err := machining.Compute(machining.PassParams{
			Operation:     in.op,
			Length:        geo.WorkingLength,
			DimensionA:    in.dimA,
			DimensionB:    in.dimB,
			CuttingEnergy: sharedEnergy,
			Power:         power,
			WearExponent:  wearExponent,
			SurfaceRate:   surfaceRate,
		}, w.variant)
		if err != nil {
			return err
		}

		rows = append(rows, buildRow(tool, setupHours, loadUnload, positioning,
			geo.WorkingLength, in, sharedEnergy, power, surfaceRate, result,
			"Finish", mat.Name, fmt.Sprintf("Weight=%.2f lb (p_s & P_m reused)", weight)))
		passTimes = append(passTimes, result.TravelCorrected)
		w.logger.Info("finish pass computed",
			"operation", string(in.op), "travel_corrected_s", result.TravelCorrected)
	}

	if len(rows) == 0 {
		fmt.Fprintln(w.out, "No passes selected. Exiting.")
		w.logger.Info("session ended without passes")
		return nil
	}

	fmt.Fprintln(w.out, "\n=== Cost Inputs ===")
	costPerPound, err := w.prompter.Float("Material cost per unit weight ($/lb)")
	if err != nil {
		return err
	}
	hourlyRate, err := w.prompter.Float("Operator hourly rate ($/hr)")
	if err != nil {
		return err
	}
	batchSize, err := w.prompter.FloatDefault("Number of parts in batch", float64(w.cfg.Defaults.BatchSize))
	if err != nil {
		return err
	}

	costs := costing.Inputs{
		StockWeight:          weight,
		MaterialCostPerPound: costPerPound,
		HourlyRate:           hourlyRate,
		BatchSize:            batchSize,
		SetupHours:           setupHours,
		LoadUnloadSeconds:    loadUnload,
		PositioningSeconds:   positioning,
		PassSeconds:          passTimes,
	}
	breakdown := costing.Estimate(costs)

	if err := w.store.Append(rows...); err != nil {
		return fmt.Errorf("append worksheet: %w", err)
	}
	w.logger.Info("rows appended", "count", len(rows), "sheet", w.store.Path())

	w.renderCostSummary(costs, breakdown)
	fmt.Fprintf(w.out, "\nRows saved to %q.\n", w.store.Path())
	w.logger.Info("session complete", "total_cost_per_part", breakdown.Total)
	return nil
}

func (w *Worker) promptGeometry() (Geometry, error) {
	fullLength, err := w.prompter.Float("Full workpiece length (in)")
	if err != nil {
		return Geometry{}, err
	}
	workingLength, err := w.prompter.Float("Working length lw (in)")
	if err != nil {
		return Geometry{}, err
	}
	startDiameter, err := w.prompter.Float("Starting diameter da (in)  [for milling: width w]")
	if err != nil {
		return Geometry{}, err
	}
	finalDiameter, err := w.prompter.Float("Overall final diameter db (in)  [for milling: depth ap]")
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{
		FullLength:    fullLength,
		WorkingLength: workingLength,
		StartDiameter: startDiameter,
		FinalDiameter: finalDiameter,
	}, nil
}

// pickMaterial offers the preset catalog plus the custom entry, prompting
// for both values when custom is chosen.
func (w *Worker) pickMaterial() (catalog.Material, error) {
	materials := catalog.Materials()
	options := make([]string, 0, len(materials)+1)
	for _, m := range materials {
		options = append(options, m.Name)
	}
	options = append(options, catalog.CustomMaterial)

	idx, err := w.prompter.Select("Workpiece material", options)
	if err != nil {
		return catalog.Material{}, err
	}
	if idx < len(materials) {
		return materials[idx], nil
	}

	density, err := w.prompter.FloatDefault("Density (lb/in^3)", w.cfg.Defaults.Density)
	if err != nil {
		return catalog.Material{}, err
	}
	energy, err := w.prompter.FloatDefault("Typical p_s (hp·min/in^3)", w.cfg.Defaults.CuttingEnergy)
	if err != nil {
		return catalog.Material{}, err
	}
	return catalog.Material{Name: catalog.CustomMaterial, Density: density, CuttingEnergy: energy}, nil
}

func (w *Worker) pickTool() (catalog.ToolType, error) {
	tools := catalog.ToolTypes()
	options := make([]string, 0, len(tools))
	for _, tt := range tools {
		options = append(options, fmt.Sprintf("%s - %s", tt.Code, tt.Name))
	}
	idx, err := w.prompter.Select("Tool Type (H/C/D)", options)
	if err != nil {
		return catalog.ToolType{}, err
	}
	return tools[idx], nil
}

// roughInput prompts for the rough pass's operation and dimensions. For
// non-milling operations the entered ending diameter is clamped into the
// band between the final and starting diameters before use.
func (w *Worker) roughInput(geo Geometry) (passInput, error) {
	op, err := w.pickOperation("Rough operation")
	if err != nil {
		return passInput{}, err
	}
	if op == machining.OpMilling {
		width, err := w.prompter.Float("Rough: milling WIDTH w (in)  [stored as da]")
		if err != nil {
			return passInput{}, err
		}
		depth, err := w.prompter.Float("Rough: milling DEPTH ap (in) [stored as db]")
		if err != nil {
			return passInput{}, err
		}
		return passInput{op: op, dimA: width, dimB: depth}, nil
	}

	entered, err := w.prompter.FloatDefault("Rough final diameter db_rough (in) [>= finish db]", geo.FinalDiameter)
	if err != nil {
		return passInput{}, err
	}
	resolved := machining.ClampRoughDiameter(entered, geo.FinalDiameter, geo.StartDiameter)
	if resolved != entered {
		if entered < geo.FinalDiameter {
			fmt.Fprintf(w.out, "  -> Rough db smaller than final db; clamped to %.4f in.\n", resolved)
		} else {
			fmt.Fprintf(w.out, "  -> Rough db larger than start da; clamped to %.4f in.\n", resolved)
		}
		w.logger.Debug("rough diameter clamped", "entered", entered, "resolved", resolved)
	}
	return passInput{op: op, dimA: geo.StartDiameter, dimB: resolved}, nil
}

// finishInput prompts for the finish pass. A non-milling finish starts from
// the rough pass's resolved diameter when one ran, and always ends at the
// overall final diameter.
func (w *Worker) finishInput(geo Geometry, chainedRough float64, roughChained bool) (passInput, error) {
	op, err := w.pickOperation("Finish operation")
	if err != nil {
		return passInput{}, err
	}
	if op == machining.OpMilling {
		width, err := w.prompter.Float("Finish: milling WIDTH w (in)  [stored as da]")
		if err != nil {
			return passInput{}, err
		}
		depth, err := w.prompter.Float("Finish: milling DEPTH ap (in) [stored as db]")
		if err != nil {
			return passInput{}, err
		}
		return passInput{op: op, dimA: width, dimB: depth}, nil
	}

	dimA := geo.StartDiameter
	if roughChained {
		dimA = chainedRough
	}
	return passInput{op: op, dimA: dimA, dimB: geo.FinalDiameter}, nil
}

func (w *Worker) pickOperation(title string) (machining.Operation, error) {
	ops := machining.Operations()
	options := make([]string, 0, len(ops))
	for _, op := range ops {
		options = append(options, op.String())
	}
	idx, err := w.prompter.Select(title, options)
	if err != nil {
		return "", err
	}
	return ops[idx], nil
}

func buildRow(tool catalog.ToolType, setupHours, loadUnload, positioning, workingLength float64,
	in passInput, cuttingEnergy, power, surfaceRate float64, result machining.PassResult,
	passName, materialName, notes string,
) sheet.Row {
	return sheet.Row{
		ToolType:           tool.Code,
		SetupHours:         setupHours,
		LoadUnloadSeconds:  loadUnload,
		PositioningSeconds: positioning,
		Length:             workingLength,
		DimensionA:         in.dimA,
		DimensionB:         in.dimB,
		Volume:             result.Volume,
		CuttingEnergy:      cuttingEnergy,
		Power:              power,
		PowerLimited:       result.PowerLimited,
		SurfaceRate:        surfaceRate,
		Area:               result.Area,
		Recommended:        result.Recommended,
		WearCorrected:      result.WearCorrected,
		TravelCorrected:    result.TravelCorrected,
		Pass:               passName,
		Operation:          string(in.op),
		Material:           materialName,
		Notes:              notes,
	}
}

// renderCostSummary prints the per-part cost breakdown with the context each
// figure was derived from.
func (w *Worker) renderCostSummary(in costing.Inputs, b costing.Breakdown) {
	p := message.NewPrinter(language.English)
	money := func(v float64) string { return p.Sprintf("$%.2f", v) }

	fmt.Fprintln(w.out, "\n=== Cost Summary (per part) ===")
	t := table.NewWriter()
	t.SetOutputMirror(w.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Component", "Cost", "Basis"})
	t.AppendRow(table.Row{
		"Material", money(b.MaterialCost),
		fmt.Sprintf("weight %.2f lb @ $%.2f/lb", in.StockWeight, in.MaterialCostPerPound),
	})
	t.AppendRow(table.Row{
		"Setup", money(b.SetupCost),
		fmt.Sprintf("setup %.3f hr @ $%.2f/hr ÷ %d parts", in.SetupHours, in.HourlyRate, int(in.BatchSize)),
	})
	t.AppendRow(table.Row{
		"Non-productive", money(b.NonProductiveCost),
		fmt.Sprintf("%.1f s @ $%.2f/hr", b.NonProductiveSeconds, in.HourlyRate),
	})
	t.AppendRow(table.Row{
		"Machining", money(b.MachiningCost),
		fmt.Sprintf("%.1f s @ $%.2f/hr", b.MachiningSeconds, in.HourlyRate),
	})
	t.AppendFooter(table.Row{"TOTAL", money(b.Total), ""})
	t.Render()
}
