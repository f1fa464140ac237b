/*
Copyright © 2018 the hydroloss authors.
This file is part of hydroloss.

hydroloss is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

hydroloss is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with hydroloss.  If not, see <http://www.gnu.org/licenses/>.
*/

package hydroloss

import "fmt"

// UnknownUnitError is returned when a unit is not among the units
// recognized for a quantity.
type UnknownUnitError struct {
	// Quantity names the quantity whose unit was rejected,
	// for example "diameter" or "flow rate".
	Quantity string
	Unit     string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("hydroloss: unknown %s unit %q", e.Quantity, e.Unit)
}

// InvalidInputError is returned when a value lies outside the domain
// where the calculation is defined, for example a zero diameter.
type InvalidInputError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("hydroloss: invalid %s %g: %s", e.Quantity, e.Value, e.Reason)
}
