package steps

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ONSdigital/dp-qri-client/clienterror"
	"github.com/cucumber/godog"
	"github.com/rdumont/assistdog"
	"github.com/stretchr/testify/assert"
)

func (c *QriClientComponent) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^qri is installed$`, c.qriIsInstalled)
	ctx.Step(`^qri is not installed$`, c.qriIsNotInstalled)
	ctx.Step(`^qri prints for "([^"]*)":$`, c.qriPrintsFor)
	ctx.Step(`^qri fails for "([^"]*)" with exit code (\d+) and stderr "([^"]*)"$`, c.qriFailsFor)
	ctx.Step(`^the cloud has the dataset "([^"]*)":$`, c.theCloudHasTheDataset)
	ctx.Step(`^the cloud has the body of "([^"]*)":$`, c.theCloudHasTheBodyOf)
	ctx.Step(`^I run "([^"]*)"$`, c.iRun)
	ctx.Step(`^the command should succeed$`, c.theCommandShouldSucceed)
	ctx.Step(`^the command should fail with "([^"]*)"$`, c.theCommandShouldFailWith)
	ctx.Step(`^the command should fail with a message containing "([^"]*)"$`, c.theCommandShouldFailWithAMessageContaining)
	ctx.Step(`^the output should be:$`, c.theOutputShouldBe)
	ctx.Step(`^the output should contain "([^"]*)"$`, c.theOutputShouldContain)
	ctx.Step(`^the listing should be:$`, c.theListingShouldBe)
	ctx.Step(`^the table should be:$`, c.theTableShouldBe)
	ctx.Step(`^qri should have been run with "([^"]*)"$`, c.qriShouldHaveBeenRunWith)
	ctx.Step(`^qri should not have been run$`, c.qriShouldNotHaveBeenRun)
	ctx.Step(`^the cloud should have received "([^"]*)"$`, c.theCloudShouldHaveReceived)
}

func (c *QriClientComponent) qriIsInstalled() error {
	c.deps.Installed = true
	return nil
}

func (c *QriClientComponent) qriIsNotInstalled() error {
	c.deps.Installed = false
	return nil
}

func (c *QriClientComponent) qriPrintsFor(line string, stdout *godog.DocString) error {
	c.deps.Qri.Responses[line] = QriResponse{Stdout: stdout.Content}
	return nil
}

func (c *QriClientComponent) qriFailsFor(line string, code int, stderr string) error {
	unquoted, err := strconv.Unquote(`"` + stderr + `"`)
	if err != nil {
		return fmt.Errorf("invalid stderr %q: %w", stderr, err)
	}
	c.deps.Qri.Responses[line] = QriResponse{Stderr: unquoted, ExitCode: code}
	return nil
}

func (c *QriClientComponent) theCloudHasTheDataset(ref string, dataset *godog.DocString) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.datasets[ref] = dataset.Content
	return nil
}

func (c *QriClientComponent) theCloudHasTheBodyOf(ref string, body *godog.DocString) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bodies[ref] = body.Content + "\n"
	return nil
}

func (c *QriClientComponent) iRun(line string) error {
	c.runCommand(line)
	return nil
}

func (c *QriClientComponent) theCommandShouldSucceed() error {
	assert.NoError(c, c.runErr, "stderr: %s", c.stderr.String())
	return c.StepError()
}

func (c *QriClientComponent) theCommandShouldFailWith(message string) error {
	assert.Error(c, c.runErr)
	assert.Equal(c, "error: "+message+"\n", clienterror.StripColor(c.stderr.String()))
	return c.StepError()
}

func (c *QriClientComponent) theCommandShouldFailWithAMessageContaining(message string) error {
	assert.Error(c, c.runErr)
	assert.Contains(c, clienterror.StripColor(c.stderr.String()), message)
	return c.StepError()
}

func (c *QriClientComponent) theOutputShouldBe(expected *godog.DocString) error {
	assert.Equal(c, strings.TrimSpace(expected.Content), strings.TrimSpace(c.output()))
	return c.StepError()
}

func (c *QriClientComponent) theOutputShouldContain(expected string) error {
	assert.Contains(c, c.output(), expected)
	return c.StepError()
}

func (c *QriClientComponent) theListingShouldBe(expected *godog.Table) error {
	return c.compareTable(expected)
}

func (c *QriClientComponent) theTableShouldBe(expected *godog.Table) error {
	return c.compareTable(expected)
}

// compareTable compares the whitespace separated columns of the output,
// header line included, with expected.
func (c *QriClientComponent) compareTable(expected *godog.Table) error {
	rows, err := assistdog.NewDefault().ParseSlice(expected)
	if err != nil {
		return err
	}

	lines := strings.Split(strings.TrimSpace(c.output()), "\n")
	if !assert.Len(c, lines, len(rows)+1, "output:\n%s", c.stdout.String()) {
		return c.StepError()
	}

	header := strings.Fields(lines[0])
	for i, row := range rows {
		fields := strings.Fields(lines[i+1])
		assert.Len(c, fields, len(header), "line %d: %q", i+1, lines[i+1])
		for j, name := range header {
			want, ok := row[strings.ToLower(name)]
			if !ok || j >= len(fields) {
				continue
			}
			assert.Equal(c, want, fields[j], "row %d column %s", i+1, name)
		}
	}
	return c.StepError()
}

func (c *QriClientComponent) qriShouldHaveBeenRunWith(line string) error {
	assert.Contains(c, c.deps.Qri.Calls, line)
	return c.StepError()
}

func (c *QriClientComponent) qriShouldNotHaveBeenRun() error {
	assert.Empty(c, c.deps.Qri.Calls)
	return c.StepError()
}

func (c *QriClientComponent) theCloudShouldHaveReceived(uri string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Contains(c, c.requests, uri)
	return c.StepError()
}

// output returns stdout without colour escapes.
func (c *QriClientComponent) output() string {
	return clienterror.StripColor(c.stdout.String())
}
