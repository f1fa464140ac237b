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

// Package hydroloss calculates friction losses for incompressible flow
// through a straight circular pipe using the Darcy-Weisbach equation.
//
// Inputs may be given in any of the units listed by Units, and results
// are returned in the units requested through OutputUnits.
package hydroloss

// Version gives the version number.
const Version = "0.1.0"
